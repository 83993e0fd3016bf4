package handlers

import (
	"context"

	"github.com/sitetrack/backend/internal/ledger"
	"github.com/sitetrack/backend/internal/models"
	"github.com/sitetrack/backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockPayeeService struct {
	mock.Mock
}

func (m *MockPayeeService) Create(ctx context.Context, kind models.PayeeKind, fields repository.PayeeFields) (*models.Payee, error) {
	args := m.Called(ctx, kind, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payee), args.Error(1)
}

func (m *MockPayeeService) Get(ctx context.Context, kind models.PayeeKind, id int64) (*models.Payee, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payee), args.Error(1)
}

func (m *MockPayeeService) List(ctx context.Context, kind models.PayeeKind) ([]models.Payee, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payee), args.Error(1)
}

func (m *MockPayeeService) Update(ctx context.Context, kind models.PayeeKind, id int64, fields repository.PayeeFields) (*models.Payee, error) {
	args := m.Called(ctx, kind, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payee), args.Error(1)
}

func (m *MockPayeeService) Delete(ctx context.Context, kind models.PayeeKind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockPayeeService) ListPayments(ctx context.Context, kind models.PayeeKind, id int64) ([]models.Payment, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPayeeService) Reconcile(ctx context.Context, kind models.PayeeKind, id int64) (*models.Reconciliation, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reconciliation), args.Error(1)
}

type MockPaymentRecorder struct {
	mock.Mock
}

func (m *MockPaymentRecorder) RecordPayment(ctx context.Context, req ledger.PaymentRequest) (*models.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

type MockAnalytics struct {
	mock.Mock
}

func (m *MockAnalytics) Rollup(ctx context.Context) (*models.Analytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Analytics), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
