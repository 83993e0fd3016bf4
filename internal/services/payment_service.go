package services

import (
	"context"

	"github.com/sitetrack/backend/internal/ledger"
	"github.com/sitetrack/backend/internal/models"
	"go.uber.org/zap"
)

type PaymentService struct {
	coordinator *ledger.Coordinator
	analytics   *AnalyticsService
	log         *zap.Logger
}

func NewPaymentService(coordinator *ledger.Coordinator, analytics *AnalyticsService, log *zap.Logger) *PaymentService {
	return &PaymentService{
		coordinator: coordinator,
		analytics:   analytics,
		log:         log,
	}
}

// RecordPayment records through the coordinator and drops the cached rollup
// once the payment is committed.
func (s *PaymentService) RecordPayment(ctx context.Context, req ledger.PaymentRequest) (*models.Payment, error) {
	payment, err := s.coordinator.RecordPayment(ctx, req)
	if err != nil {
		return nil, err
	}
	s.analytics.Invalidate(ctx)

	s.log.Info("Payment recorded",
		zap.String("payee_kind", req.Kind.String()),
		zap.Int64("payee_id", payment.PayeeID),
		zap.Int64("payment_id", payment.ID),
		zap.String("amount", payment.Amount.StringFixed(2)))
	return payment, nil
}
