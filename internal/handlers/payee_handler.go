package handlers

import (
	"context"
	"net/http"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	ierr "github.com/sitetrack/backend/internal/errors"
	"github.com/sitetrack/backend/internal/ledger"
	"github.com/sitetrack/backend/internal/models"
	"github.com/sitetrack/backend/internal/repository"
	"github.com/sitetrack/backend/internal/services"
	"go.uber.org/zap"
)

// PayeeService is the payee side of the query surface
type PayeeService interface {
	Create(ctx context.Context, kind models.PayeeKind, fields repository.PayeeFields) (*models.Payee, error)
	Get(ctx context.Context, kind models.PayeeKind, id int64) (*models.Payee, error)
	List(ctx context.Context, kind models.PayeeKind) ([]models.Payee, error)
	Update(ctx context.Context, kind models.PayeeKind, id int64, fields repository.PayeeFields) (*models.Payee, error)
	Delete(ctx context.Context, kind models.PayeeKind, id int64) error
	ListPayments(ctx context.Context, kind models.PayeeKind, id int64) ([]models.Payment, error)
	Reconcile(ctx context.Context, kind models.PayeeKind, id int64) (*models.Reconciliation, error)
}

// PaymentRecorder records a payment and its aggregate update atomically
type PaymentRecorder interface {
	RecordPayment(ctx context.Context, req ledger.PaymentRequest) (*models.Payment, error)
}

type PayeeRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120" example:"Ravi Kumar"`
	Role    string `json:"role" validate:"max=80" example:"Mason"`
	Contact string `json:"contact" validate:"max=120" example:"+91 98450 12345"`
}

type PaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"500.00"`
	PaymentDate string          `json:"paymentDate" validate:"required,datetime=2006-01-02" example:"2024-02-10"`
	Description string          `json:"description" validate:"max=500" example:"advance"`
}

// PayeeHandler serves one payee kind. Workers and vendors share the same
// routes under different prefixes.
type PayeeHandler struct {
	kind      models.PayeeKind
	payees    PayeeService
	payments  PaymentRecorder
	validator *services.ValidationHelper
	log       *zap.Logger
}

func NewPayeeHandler(kind models.PayeeKind, payees PayeeService, payments PaymentRecorder, log *zap.Logger) *PayeeHandler {
	return &PayeeHandler{
		kind:      kind,
		payees:    payees,
		payments:  payments,
		validator: services.NewValidationHelper(),
		log:       log,
	}
}

func (h *PayeeHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Post("/payments", h.RecordPayment)
		r.Get("/payments", h.ListPayments)
		r.Get("/reconcile", h.Reconcile)
	})
	return r
}

// Create adds a payee
// @Summary Create payee
// @Description Create a worker or vendor. Totals start at zero.
// @Tags Payees
// @Accept json
// @Produce json
// @Param kind path string true "workers or vendors"
// @Param request body PayeeRequest true "Payee details"
// @Success 201 {object} models.Payee
// @Failure 400 {object} services.ErrorResponse
// @Router /{kind} [post]
func (h *PayeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.decodePayee(w, r)
	if !ok {
		return
	}

	payee, err := h.payees.Create(r.Context(), h.kind, fields)
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, payee)
}

// List returns all payees of the kind
// @Summary List payees
// @Tags Payees
// @Produce json
// @Param kind path string true "workers or vendors"
// @Success 200 {array} models.Payee
// @Router /{kind} [get]
func (h *PayeeHandler) List(w http.ResponseWriter, r *http.Request) {
	payees, err := h.payees.List(r.Context(), h.kind)
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payees)
}

// Get returns one payee with its running totals
// @Summary Get payee
// @Tags Payees
// @Produce json
// @Param kind path string true "workers or vendors"
// @Param id path int true "Payee ID"
// @Success 200 {object} models.Payee
// @Failure 404 {object} services.ErrorResponse
// @Router /{kind}/{id} [get]
func (h *PayeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := payeeID(w, r)
	if !ok {
		return
	}

	payee, err := h.payees.Get(r.Context(), h.kind, id)
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payee)
}

// Update changes name, role and contact
// @Summary Update payee
// @Description Totals and last payment date cannot be changed here.
// @Tags Payees
// @Accept json
// @Produce json
// @Param kind path string true "workers or vendors"
// @Param id path int true "Payee ID"
// @Param request body PayeeRequest true "Payee details"
// @Success 200 {object} models.Payee
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /{kind}/{id} [put]
func (h *PayeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := payeeID(w, r)
	if !ok {
		return
	}
	fields, ok := h.decodePayee(w, r)
	if !ok {
		return
	}

	payee, err := h.payees.Update(r.Context(), h.kind, id, fields)
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payee)
}

// Delete removes the payee and its payment history
// @Summary Delete payee
// @Tags Payees
// @Param kind path string true "workers or vendors"
// @Param id path int true "Payee ID"
// @Success 204
// @Failure 404 {object} services.ErrorResponse
// @Router /{kind}/{id} [delete]
func (h *PayeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := payeeID(w, r)
	if !ok {
		return
	}

	if err := h.payees.Delete(r.Context(), h.kind, id); err != nil {
		h.sendError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecordPayment records a payment against the payee
// @Summary Record payment
// @Description Appends a ledger entry and updates the payee totals in one transaction.
// @Tags Payments
// @Accept json
// @Produce json
// @Param kind path string true "workers or vendors"
// @Param id path int true "Payee ID"
// @Param request body PaymentRequest true "Payment"
// @Success 201 {object} models.Payment
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /{kind}/{id}/payments [post]
func (h *PayeeHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := payeeID(w, r)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendDecodeError(w, err)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	date, err := civil.ParseDate(req.PaymentDate)
	if err != nil {
		services.SendErrorResponse(w, "Payment date must be a valid calendar date (YYYY-MM-DD)", http.StatusBadRequest, nil)
		return
	}

	payment, err := h.payments.RecordPayment(r.Context(), ledger.PaymentRequest{
		Kind:        h.kind,
		PayeeID:     id,
		Amount:      req.Amount,
		Date:        date,
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

// ListPayments returns the payee's ledger, newest first
// @Summary List payments
// @Tags Payments
// @Produce json
// @Param kind path string true "workers or vendors"
// @Param id path int true "Payee ID"
// @Success 200 {array} models.Payment
// @Failure 404 {object} services.ErrorResponse
// @Router /{kind}/{id}/payments [get]
func (h *PayeeHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, ok := payeeID(w, r)
	if !ok {
		return
	}

	payments, err := h.payees.ListPayments(r.Context(), h.kind, id)
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// Reconcile compares the stored totals with the ledger
// @Summary Reconcile payee
// @Tags Payments
// @Produce json
// @Param kind path string true "workers or vendors"
// @Param id path int true "Payee ID"
// @Success 200 {object} models.Reconciliation
// @Failure 404 {object} services.ErrorResponse
// @Router /{kind}/{id}/reconcile [get]
func (h *PayeeHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	id, ok := payeeID(w, r)
	if !ok {
		return
	}

	result, err := h.payees.Reconcile(r.Context(), h.kind, id)
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PayeeHandler) decodePayee(w http.ResponseWriter, r *http.Request) (repository.PayeeFields, bool) {
	var req PayeeRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendDecodeError(w, err)
		return repository.PayeeFields{}, false
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return repository.PayeeFields{}, false
	}
	return repository.PayeeFields{
		Name:    req.Name,
		Role:    strings.TrimSpace(req.Role),
		Contact: strings.TrimSpace(req.Contact),
	}, true
}

func (h *PayeeHandler) sendError(w http.ResponseWriter, r *http.Request, err error) {
	if ierr.HTTPStatusFromErr(err) >= http.StatusInternalServerError {
		h.log.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("payee_kind", h.kind.String()),
			zap.Error(err))
	}
	services.SendError(w, err)
}
