package models

import (
	"encoding/json"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayeeKind(t *testing.T) {
	kind, err := ParsePayeeKind(" Worker ")
	require.NoError(t, err)
	assert.Equal(t, PayeeKindWorker, kind)
	assert.Equal(t, "Worker", kind.Title())

	_, err = ParsePayeeKind("contractor")
	assert.Error(t, err)
}

func TestPaymentJSON(t *testing.T) {
	p := Payment{
		ID:          1,
		PayeeID:     7,
		Amount:      decimal.RequireFromString("250.50"),
		PaymentDate: civil.Date{Year: 2024, Month: 2, Day: 15},
		Description: "balance",
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, 250.5, raw["amount"])
	assert.Equal(t, "2024-02-15", raw["paymentDate"])
	assert.Equal(t, float64(7), raw["payeeId"])
}

func TestReconciliationCheck(t *testing.T) {
	date := civil.Date{Year: 2024, Month: 1, Day: 1}
	other := civil.Date{Year: 2024, Month: 3, Day: 1}

	r := Reconciliation{
		StoredTotal:           decimal.RequireFromString("750.50"),
		LedgerTotal:           decimal.RequireFromString("750.5"),
		StoredLastPaymentDate: &date,
		LedgerLastPaymentDate: &date,
	}
	r.Check()
	assert.True(t, r.Consistent)

	r.LedgerLastPaymentDate = &other
	r.Check()
	assert.False(t, r.Consistent)

	r = Reconciliation{StoredTotal: decimal.Zero, LedgerTotal: decimal.Zero}
	r.Check()
	assert.True(t, r.Consistent)
}
