package ledger

import (
	"context"

	"github.com/sitetrack/backend/internal/audit"
	ierr "github.com/sitetrack/backend/internal/errors"
	"github.com/sitetrack/backend/internal/models"
	"go.uber.org/zap"
)

// Coordinator is the only path that records payments. Each payment appends a
// ledger entry and updates the payee aggregate in one unit of work, so the
// two can never be observed apart.
type Coordinator struct {
	store Store
	audit *audit.Logger
	log   *zap.Logger
}

func NewCoordinator(store Store, auditLogger *audit.Logger, log *zap.Logger) *Coordinator {
	return &Coordinator{
		store: store,
		audit: auditLogger,
		log:   log,
	}
}

// RecordPayment validates req, then appends the entry and applies it to the
// payee aggregate atomically. Validation failures are InvalidArgument and
// never touch storage. Any later failure is TransactionFailed wrapping the
// cause (NotFound or StorageFault) and leaves no trace of the attempt.
func (c *Coordinator) RecordPayment(ctx context.Context, req PaymentRequest) (*models.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var payment *models.Payment
	err := c.store.WithTx(ctx, func(ctx context.Context, w Writer) error {
		entry, err := w.appendPayment(ctx, req)
		if err != nil {
			return err
		}
		if err := w.applyPayment(ctx, req); err != nil {
			return err
		}
		payment = entry
		return nil
	})
	if err != nil {
		err = ierr.WithError(err).
			WithMessagef("recording payment for %s %d", req.Kind, req.PayeeID).
			Mark(ierr.ErrTransactionFailed)

		c.log.Error("Payment transaction rolled back",
			zap.String("payee_kind", req.Kind.String()),
			zap.Int64("payee_id", req.PayeeID),
			zap.String("amount", req.Amount.String()),
			zap.String("code", ierr.Code(err)),
			zap.Error(err))
		c.audit.LogError(req.Kind, req.PayeeID, req.Amount.StringFixed(2), err)
		return nil, err
	}

	c.audit.LogPayment(req.Kind, payment)
	return payment, nil
}
