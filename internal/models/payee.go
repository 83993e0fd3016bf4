package models

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are exchanged as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// PayeeKind tags a payee as a worker or a vendor
type PayeeKind string

const (
	PayeeKindWorker PayeeKind = "worker"
	PayeeKindVendor PayeeKind = "vendor"
)

func (k PayeeKind) Valid() bool {
	return k == PayeeKindWorker || k == PayeeKindVendor
}

func (k PayeeKind) String() string {
	return string(k)
}

// Title returns the display form used in messages, e.g. "Worker".
func (k PayeeKind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

func ParsePayeeKind(s string) (PayeeKind, error) {
	kind := PayeeKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", fmt.Errorf("unknown payee kind %q", s)
	}
	return kind, nil
}

// Payee is a worker or vendor together with its running payment aggregate.
// TotalPaid and LastPaymentDate are written only by the payment coordinator.
type Payee struct {
	ID              int64           `json:"id" example:"1"`
	Kind            PayeeKind       `json:"kind" example:"worker"`
	Name            string          `json:"name" example:"Ravi Kumar"`
	Role            string          `json:"role" example:"Mason"`
	Contact         string          `json:"contact,omitempty" example:"+91 98450 12345"`
	TotalPaid       decimal.Decimal `json:"totalPaid" swaggertype:"number" example:"750.50"`
	LastPaymentDate *civil.Date     `json:"lastPaymentDate" swaggertype:"string" example:"2024-02-15"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
