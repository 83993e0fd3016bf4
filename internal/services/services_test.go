package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v8"
	"github.com/jmoiron/sqlx"
	"github.com/sitetrack/backend/internal/audit"
	"github.com/sitetrack/backend/internal/ledger"
	"github.com/sitetrack/backend/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC)

var (
	payeeColumns   = []string{"id", "kind", "name", "role", "contact", "total_paid", "last_payment_date", "created_at", "updated_at"}
	paymentColumns = []string{"id", "payee_id", "amount", "payment_date", "description", "created_at"}
)

type testServices struct {
	payees    *PayeeService
	payments  *PaymentService
	analytics *AnalyticsService
	sql       sqlmock.Sqlmock
	redis     redismock.ClientMock
}

func newTestServices(t *testing.T) *testServices {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	redisClient, redisMock := redismock.NewClientMock()

	log := zap.NewNop()
	auditLogger := audit.NewLogger(log)
	sqlxDB := sqlx.NewDb(db, "postgres")
	store := ledger.NewPostgresStore(db)

	analytics := NewAnalyticsService(sqlxDB, redisClient, time.Minute, log)
	return &testServices{
		payees:    NewPayeeService(repository.NewPayeeRepository(sqlxDB), store, analytics, auditLogger, log),
		payments:  NewPaymentService(ledger.NewCoordinator(store, auditLogger, log), analytics, log),
		analytics: analytics,
		sql:       sqlMock,
		redis:     redisMock,
	}
}

func (ts *testServices) assertExpectations(t *testing.T) {
	t.Helper()
	require.NoError(t, ts.sql.ExpectationsWereMet())
	require.NoError(t, ts.redis.ExpectationsWereMet())
}
