package models

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Payment is an immutable ledger entry owned by a payee
type Payment struct {
	ID          int64           `json:"id" example:"42"`
	PayeeID     int64           `json:"payeeId" example:"1"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"500.00"`
	PaymentDate civil.Date      `json:"paymentDate" swaggertype:"string" example:"2024-02-10"`
	Description string          `json:"description,omitempty" example:"advance"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Reconciliation compares a payee's stored aggregate with its ledger
type Reconciliation struct {
	PayeeID               int64           `json:"payeeId"`
	Kind                  PayeeKind       `json:"kind"`
	EntryCount            int64           `json:"entryCount"`
	StoredTotal           decimal.Decimal `json:"storedTotal" swaggertype:"number"`
	LedgerTotal           decimal.Decimal `json:"ledgerTotal" swaggertype:"number"`
	StoredLastPaymentDate *civil.Date     `json:"storedLastPaymentDate" swaggertype:"string"`
	LedgerLastPaymentDate *civil.Date     `json:"ledgerLastPaymentDate" swaggertype:"string"`
	Consistent            bool            `json:"consistent"`
}

// Check fills Consistent from the stored and ledger sides
func (r *Reconciliation) Check() {
	r.Consistent = r.StoredTotal.Equal(r.LedgerTotal) && sameDate(r.StoredLastPaymentDate, r.LedgerLastPaymentDate)
}

func sameDate(a, b *civil.Date) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
