package services

import (
	"context"

	"github.com/sitetrack/backend/internal/audit"
	"github.com/sitetrack/backend/internal/ledger"
	"github.com/sitetrack/backend/internal/models"
	"github.com/sitetrack/backend/internal/repository"
	"go.uber.org/zap"
)

// PayeeService serves workers and vendors together with their ledgers
type PayeeService struct {
	payees    *repository.PayeeRepository
	ledger    *ledger.PostgresStore
	analytics *AnalyticsService
	audit     *audit.Logger
	log       *zap.Logger
}

func NewPayeeService(
	payees *repository.PayeeRepository,
	ledgerStore *ledger.PostgresStore,
	analytics *AnalyticsService,
	auditLogger *audit.Logger,
	log *zap.Logger,
) *PayeeService {
	return &PayeeService{
		payees:    payees,
		ledger:    ledgerStore,
		analytics: analytics,
		audit:     auditLogger,
		log:       log,
	}
}

func (s *PayeeService) Create(ctx context.Context, kind models.PayeeKind, fields repository.PayeeFields) (*models.Payee, error) {
	payee, err := s.payees.Create(ctx, kind, fields)
	if err != nil {
		return nil, err
	}
	s.analytics.Invalidate(ctx)

	s.log.Info("Payee created",
		zap.String("payee_kind", kind.String()),
		zap.Int64("payee_id", payee.ID))
	return payee, nil
}

func (s *PayeeService) Get(ctx context.Context, kind models.PayeeKind, id int64) (*models.Payee, error) {
	return s.payees.Get(ctx, kind, id)
}

func (s *PayeeService) List(ctx context.Context, kind models.PayeeKind) ([]models.Payee, error) {
	return s.payees.List(ctx, kind)
}

func (s *PayeeService) Update(ctx context.Context, kind models.PayeeKind, id int64, fields repository.PayeeFields) (*models.Payee, error) {
	return s.payees.Update(ctx, kind, id, fields)
}

// Delete removes the payee with its whole payment history.
func (s *PayeeService) Delete(ctx context.Context, kind models.PayeeKind, id int64) error {
	if err := s.payees.Delete(ctx, kind, id); err != nil {
		return err
	}
	s.analytics.Invalidate(ctx)
	s.audit.LogOperation(kind, id, audit.EventPayeeDeleted, "payee and ledger entries removed")
	return nil
}

// ListPayments returns the ledger of an existing payee, NotFound otherwise.
func (s *PayeeService) ListPayments(ctx context.Context, kind models.PayeeKind, id int64) ([]models.Payment, error) {
	if _, err := s.payees.Get(ctx, kind, id); err != nil {
		return nil, err
	}
	return s.ledger.ListByPayee(ctx, id)
}

// Reconcile recomputes the aggregate from the ledger and reports whether the
// stored one matches. It never repairs anything.
func (s *PayeeService) Reconcile(ctx context.Context, kind models.PayeeKind, id int64) (*models.Reconciliation, error) {
	result, err := s.ledger.Reconcile(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if !result.Consistent {
		s.log.Warn("Payee aggregate does not match ledger",
			zap.String("payee_kind", kind.String()),
			zap.Int64("payee_id", id),
			zap.String("stored_total", result.StoredTotal.String()),
			zap.String("ledger_total", result.LedgerTotal.String()))
	}
	return result, nil
}
