package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	ierr "github.com/sitetrack/backend/internal/errors"
)

// ErrCodeRateLimited is reported when a client exceeds its request budget
const ErrCodeRateLimited = "rate_limited"

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error   string            `json:"error"`             // Error message
	Code    string            `json:"code"`              // Machine readable code
	Details map[string]string `json:"details,omitempty"` // Validation details
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper
func NewValidationHelper() *ValidationHelper {
	return &ValidationHelper{
		validator: validator.New(),
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// SendErrorResponse sends a JSON error response
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	errorResp := ErrorResponse{Error: message, Code: codeForStatus(statusCode)}

	var validationErrors validator.ValidationErrors
	if errors.As(validationErr, &validationErrors) {
		errorResp.Details = make(map[string]string)
		for _, err := range validationErrors {
			errorResp.Details[err.Field()] = fmt.Sprintf("Field Validation Failed on '%s' tag", err.Tag())
		}
	}

	writeError(w, statusCode, errorResp)
}

// SendError replies with the classification of err. Only the client facing
// hint is exposed, never the internal error chain.
func SendError(w http.ResponseWriter, err error) {
	writeError(w, ierr.HTTPStatusFromErr(err), ErrorResponse{
		Error: ierr.DisplayMessage(err),
		Code:  ierr.Code(err),
	})
}

func writeError(w http.ResponseWriter, statusCode int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

func codeForStatus(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return ierr.ErrCodeInvalidArgument
	case http.StatusNotFound:
		return ierr.ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimited
	}
	return ierr.ErrCodeInternal
}
