package apperror

import (
	"errors"
	"net/http"
)

// Kind is the stable, machine-readable error category returned to clients.
type Kind string

const (
	KindInvalidInput         Kind = "invalid_input"
	KindDuplicateOrderNumber Kind = "duplicate_order_number"
	KindNotFound             Kind = "not_found"
	KindStorageFailure       Kind = "storage_failure"
	KindSequenceExhausted    Kind = "sequence_exhausted"
	KindConflict             Kind = "conflict"
	KindUnauthorized         Kind = "unauthorized"
	KindForbidden            Kind = "forbidden"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"-"`
	Kind    Kind         `json:"code"`
	Message string       `json:"message"`
	Detail  string       `json:"detail,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	cause   error
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches on Kind so callers can use errors.Is against the sentinels below.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Kind: KindForbidden, Message: "Forbidden"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Invalid username or password"}
	ErrInvalidInput       = &AppError{Code: http.StatusBadRequest, Kind: KindInvalidInput, Message: "Invalid input"}
	ErrDuplicateOrder     = &AppError{Code: http.StatusConflict, Kind: KindDuplicateOrderNumber, Message: "Order number already exists"}
	ErrSequenceExhausted  = &AppError{Code: http.StatusConflict, Kind: KindSequenceExhausted, Message: "Order number sequence exhausted for the day"}
	ErrStorage            = &AppError{Code: http.StatusInternalServerError, Kind: KindStorageFailure, Message: "Storage failure"}
	ErrConflict           = &AppError{Code: http.StatusConflict, Kind: KindConflict, Message: "Resource already exists"}
)

// NewAppError creates a new application error
func NewAppError(code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindInvalidInput,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewInvalidInputError creates an invalid input error with a descriptive message
func NewInvalidInputError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// NewDuplicateOrderNumberError reports a clash on the order number unique index.
func NewDuplicateOrderNumberError(orderNumber string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindDuplicateOrderNumber,
		Message: "Order number already exists",
		Detail:  orderNumber,
	}
}

// NewStorageError wraps a persistence failure. The underlying message is kept
// as diagnostic detail.
func NewStorageError(err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindStorageFailure,
		Message: "Storage failure",
		Detail:  err.Error(),
		cause:   err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewStorageError(err)
}
