package handlers

import (
	"context"
	"net/http"

	"github.com/sitetrack/backend/internal/models"
	"github.com/sitetrack/backend/internal/services"
	"go.uber.org/zap"
)

type AnalyticsProvider interface {
	Rollup(ctx context.Context) (*models.Analytics, error)
}

type AnalyticsHandler struct {
	analytics AnalyticsProvider
	log       *zap.Logger
}

func NewAnalyticsHandler(analytics AnalyticsProvider, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, log: log}
}

// GetAnalytics returns payee and payment totals per kind
// @Summary Analytics rollup
// @Description Counts and totals across workers and vendors, reflecting every committed payment.
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.Analytics
// @Failure 500 {object} services.ErrorResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analytics.Rollup(r.Context())
	if err != nil {
		h.log.Error("Failed to compute analytics", zap.Error(err))
		services.SendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}
