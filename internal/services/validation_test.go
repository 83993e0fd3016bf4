package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	ierr "github.com/sitetrack/backend/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPaymentForm struct {
	Name        string `validate:"required,min=2"`
	PaymentDate string `validate:"required,datetime=2006-01-02"`
	Description string `validate:"max=10"`
}

func TestValidationHelper_ValidateStruct(t *testing.T) {
	vh := NewValidationHelper()

	t.Run("valid struct", func(t *testing.T) {
		valid := testPaymentForm{
			Name:        "Ravi Kumar",
			PaymentDate: "2024-02-10",
		}

		err := vh.ValidateStruct(&valid)
		assert.NoError(t, err)
	})

	t.Run("invalid struct", func(t *testing.T) {
		invalid := testPaymentForm{
			Name:        "R",
			PaymentDate: "10/02/2024",
			Description: "far too long a description",
		}

		err := vh.ValidateStruct(&invalid)
		require.Error(t, err)

		validationErrors, ok := err.(validator.ValidationErrors)
		assert.True(t, ok)
		assert.Len(t, validationErrors, 3)
	})

	t.Run("impossible calendar date", func(t *testing.T) {
		invalid := testPaymentForm{
			Name:        "Ravi Kumar",
			PaymentDate: "2024-02-30",
		}

		err := vh.ValidateStruct(&invalid)
		require.Error(t, err)

		validationErrors, ok := err.(validator.ValidationErrors)
		require.True(t, ok)
		assert.Equal(t, "PaymentDate", validationErrors[0].Field())
		assert.Equal(t, "datetime", validationErrors[0].Tag())
	})
}

func TestSendErrorResponse(t *testing.T) {
	t.Run("without validation errors", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendErrorResponse(w, "Something went wrong", http.StatusInternalServerError, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Something went wrong", response.Error)
		assert.Equal(t, ierr.ErrCodeInternal, response.Code)
		assert.Nil(t, response.Details)
	})

	t.Run("with validation errors", func(t *testing.T) {
		validationErr := NewValidationHelper().ValidateStruct(&testPaymentForm{Name: "R"})
		require.Error(t, validationErr)

		w := httptest.NewRecorder()
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, validationErr)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Validation failed", response.Error)
		assert.Equal(t, ierr.ErrCodeInvalidArgument, response.Code)
		assert.Contains(t, response.Details, "Name")
		assert.Contains(t, response.Details, "PaymentDate")
	})

	t.Run("non validator error is not expanded", func(t *testing.T) {
		w := httptest.NewRecorder()
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, errors.New("unexpected EOF"))

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Nil(t, response.Details)
	})

	t.Run("rate limited", func(t *testing.T) {
		w := httptest.NewRecorder()
		SendErrorResponse(w, "Too many requests", http.StatusTooManyRequests, nil)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, ErrCodeRateLimited, response.Code)
	})
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "invalid argument",
			err:        ierr.NewError("amount -1 is not positive").WithHint("Amount must be greater than zero").Mark(ierr.ErrInvalidArgument),
			wantStatus: http.StatusBadRequest,
			wantCode:   ierr.ErrCodeInvalidArgument,
			wantError:  "Amount must be greater than zero",
		},
		{
			name: "failed transaction caused by missing payee",
			err: ierr.WithError(
				ierr.NewError("worker 9 does not exist").WithHint("Worker not found").Mark(ierr.ErrNotFound),
			).Mark(ierr.ErrTransactionFailed),
			wantStatus: http.StatusNotFound,
			wantCode:   ierr.ErrCodeNotFound,
			wantError:  "Worker not found",
		},
		{
			name:       "storage fault hides internals",
			err:        ierr.NewError("pq: connection refused").Mark(ierr.ErrStorageFault),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ierr.ErrCodeStorageFault,
			wantError:  "Internal server error",
		},
		{
			name:       "unclassified",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ierr.ErrCodeInternal,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SendError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantCode, response.Code)
			assert.Equal(t, tt.wantError, response.Error)
		})
	}
}
