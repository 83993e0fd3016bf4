package models

import "github.com/shopspring/decimal"

// KindRollup summarises one payee kind
type KindRollup struct {
	Payees    int64           `json:"payees"`
	Payments  int64           `json:"payments"`
	TotalPaid decimal.Decimal `json:"totalPaid" swaggertype:"number"`
}

// Analytics is the read-only rollup across payees and the ledger
type Analytics struct {
	Workers   KindRollup      `json:"workers"`
	Vendors   KindRollup      `json:"vendors"`
	Payments  int64           `json:"payments"`
	TotalPaid decimal.Decimal `json:"totalPaid" swaggertype:"number"`
}

// Rollup returns the per-kind bucket, nil for unknown kinds
func (a *Analytics) Rollup(kind PayeeKind) *KindRollup {
	switch kind {
	case PayeeKindWorker:
		return &a.Workers
	case PayeeKindVendor:
		return &a.Vendors
	}
	return nil
}
