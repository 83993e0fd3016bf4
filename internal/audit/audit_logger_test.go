package audit

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	ierr "github.com/sitetrack/backend/internal/errors"
	"github.com/sitetrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewLogger(zap.New(core)), logs
}

func TestLogger_LogPayment(t *testing.T) {
	logger, logs := newObservedLogger()

	logger.LogPayment(models.PayeeKindWorker, &models.Payment{
		ID:          9,
		PayeeID:     3,
		Amount:      decimal.RequireFromString("500"),
		PaymentDate: civil.Date{Year: 2024, Month: 2, Day: 10},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()

	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "AUDIT", entry.Message)
	assert.Equal(t, EventPaymentRecorded, fields["event_type"])
	assert.Equal(t, "worker", fields["payee_kind"])
	assert.Equal(t, int64(3), fields["payee_id"])
	assert.Equal(t, int64(9), fields["payment_id"])
	assert.Equal(t, "500.00", fields["amount"])
	assert.NotEmpty(t, fields["event_id"])
}

func TestLogger_LogError(t *testing.T) {
	logger, logs := newObservedLogger()

	err := ierr.WithError(errors.New("vendor 4 does not exist")).Mark(ierr.ErrNotFound)
	logger.LogError(models.PayeeKindVendor, 4, "10.00", err)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()

	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, EventPaymentFailed, fields["event_type"])
	assert.Equal(t, "FAILED", fields["status"])
	assert.NotContains(t, fields, "payment_id")
}

func TestLogger_LogOperation(t *testing.T) {
	logger, logs := newObservedLogger()

	logger.LogOperation(models.PayeeKindVendor, 5, EventPayeeDeleted, "payments removed with payee")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, EventPayeeDeleted, logs.All()[0].ContextMap()["event_type"])
}
