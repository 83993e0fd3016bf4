package ledger

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	ierr "github.com/sitetrack/backend/internal/errors"
	"github.com/sitetrack/backend/internal/models"
)

// MaxAmount is the exclusive upper bound of a NUMERIC(14,2) column
var MaxAmount = decimal.New(1, 12)

// PaymentRequest is a payment to be recorded against one payee
type PaymentRequest struct {
	Kind        models.PayeeKind
	PayeeID     int64
	Amount      decimal.Decimal
	Date        civil.Date
	Description string
}

// Validate rejects malformed requests before any storage access
func (r PaymentRequest) Validate() error {
	if !r.Kind.Valid() {
		return ierr.NewErrorf("unknown payee kind %q", r.Kind).
			WithHint("Payee kind must be worker or vendor").
			Mark(ierr.ErrInvalidArgument)
	}
	if r.PayeeID <= 0 {
		return ierr.NewErrorf("invalid payee id %d", r.PayeeID).
			WithHint("Payee id must be a positive integer").
			Mark(ierr.ErrInvalidArgument)
	}
	if !r.Amount.IsPositive() {
		return ierr.NewErrorf("amount %s is not positive", r.Amount).
			WithHint("Amount must be greater than zero").
			Mark(ierr.ErrInvalidArgument)
	}
	if r.Amount.GreaterThanOrEqual(MaxAmount) {
		return ierr.NewErrorf("amount %s exceeds the supported range", r.Amount).
			WithHintf("Amount must be less than %s", MaxAmount.StringFixed(0)).
			Mark(ierr.ErrInvalidArgument)
	}
	if !r.Amount.Equal(r.Amount.Round(2)) {
		return ierr.NewErrorf("amount %s has more than 2 decimal places", r.Amount).
			WithHint("Amount can have at most 2 decimal places").
			Mark(ierr.ErrInvalidArgument)
	}
	if !r.Date.IsValid() {
		return ierr.NewErrorf("invalid payment date %v", r.Date).
			WithHint("Payment date must be a valid calendar date (YYYY-MM-DD)").
			Mark(ierr.ErrInvalidArgument)
	}
	return nil
}

// Store opens units of work spanning the ledger and the payee aggregates.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, w Writer) error) error
}

// Writer performs the two writes of a payment inside one unit of work. Its
// methods are unexported so only this package can append entries or move
// totals.
type Writer interface {
	appendPayment(ctx context.Context, req PaymentRequest) (*models.Payment, error)
	applyPayment(ctx context.Context, req PaymentRequest) error
}
