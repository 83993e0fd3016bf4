package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	ierr "github.com/sitetrack/backend/internal/errors"
	"github.com/sitetrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAnalyticsHandler_GetAnalytics(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		provider := new(MockAnalytics)
		provider.On("Rollup", mock.Anything).Return(&models.Analytics{
			Workers:   models.KindRollup{Payees: 2, Payments: 3, TotalPaid: decimal.RequireFromString("750.50")},
			Vendors:   models.KindRollup{Payees: 1, Payments: 1, TotalPaid: decimal.RequireFromString("1200.00")},
			Payments:  4,
			TotalPaid: decimal.RequireFromString("1950.50"),
		}, nil)

		w := httptest.NewRecorder()
		NewAnalyticsHandler(provider, zap.NewNop()).GetAnalytics(w, httptest.NewRequest(http.MethodGet, "/analytics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(4), body["payments"])
		assert.Equal(t, 1950.5, body["totalPaid"])
		provider.AssertExpectations(t)
	})

	t.Run("failure", func(t *testing.T) {
		provider := new(MockAnalytics)
		provider.On("Rollup", mock.Anything).
			Return(nil, ierr.WithError(errors.New("timeout")).Mark(ierr.ErrStorageFault))

		w := httptest.NewRecorder()
		NewAnalyticsHandler(provider, zap.NewNop()).GetAnalytics(w, httptest.NewRequest(http.MethodGet, "/analytics", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		db := new(MockPinger)
		db.On("PingContext", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		NewHealthHandler(db, time.Second, zap.NewNop()).Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy","database":"ok"}`, w.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		db := new(MockPinger)
		db.On("PingContext", mock.Anything).Return(errors.New("connection refused"))

		w := httptest.NewRecorder()
		NewHealthHandler(db, time.Second, zap.NewNop()).Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
