package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinels for the error taxonomy. Errors are classified by marking them with
// one of these through the builder, never by string matching.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrStorageFault      = errors.New("storage fault")
	ErrTransactionFailed = errors.New("transaction failed")
)

const (
	ErrCodeInvalidArgument   = "invalid_argument"
	ErrCodeNotFound          = "not_found"
	ErrCodeStorageFault      = "storage_fault"
	ErrCodeTransactionFailed = "transaction_failed"
	ErrCodeInternal          = "internal_error"
)

type classification struct {
	sentinel error
	code     string
	status   int
}

// Checked in order: a failed transaction caused by a missing payee reports the
// more specific not_found classification.
var classifications = []classification{
	{ErrInvalidArgument, ErrCodeInvalidArgument, http.StatusBadRequest},
	{ErrNotFound, ErrCodeNotFound, http.StatusNotFound},
	{ErrStorageFault, ErrCodeStorageFault, http.StatusInternalServerError},
	{ErrTransactionFailed, ErrCodeTransactionFailed, http.StatusInternalServerError},
}

func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStorageFault checks if an error is a storage fault
func IsStorageFault(err error) bool {
	return errors.Is(err, ErrStorageFault)
}

// IsTransactionFailed checks if an error came out of an aborted unit of work
func IsTransactionFailed(err error) bool {
	return errors.Is(err, ErrTransactionFailed)
}

// Code returns the machine-readable code of the most specific classification.
func Code(err error) string {
	for _, c := range classifications {
		if errors.Is(err, c.sentinel) {
			return c.code
		}
	}
	return ErrCodeInternal
}

func HTTPStatusFromErr(err error) int {
	for _, c := range classifications {
		if errors.Is(err, c.sentinel) {
			return c.status
		}
	}
	return http.StatusInternalServerError
}

// DisplayMessage returns the user facing hint of an error, falling back to a
// generic message so internal details never leak to clients.
func DisplayMessage(err error) string {
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		return hints[0]
	}
	switch Code(err) {
	case ErrCodeInvalidArgument:
		return "Invalid request"
	case ErrCodeNotFound:
		return "Resource not found"
	default:
		return "Internal server error"
	}
}
