package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is authenticated but may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthenticated indicates that no caller identity is available.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrInternal is the kind of every unexpected failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish code, a user visible message and the wrapped cause.
// Details is optional payload returned to the client alongside the message,
// e.g. the already existing record on a conflict.
type AppError struct {
	Code    int
	Message string
	Err     error
	Details any
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the sentinel of its kind.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrDuplicate:
		return e.Code == http.StatusConflict
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrUnauthenticated:
		return e.Code == http.StatusUnauthorized
	case ErrInternal:
		return e.Code >= http.StatusInternalServerError
	}
	return false
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// NewValidationError reports invalid input detected by the application itself.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewValidationFailedError reports invalid input detected by the storage layer (e.g. a dangling foreign key).
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewConflictErrorWithDetails is a conflict that hands the existing record back to the caller.
func NewConflictErrorWithDetails(message string, existing any) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Details: existing}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

// Kind returns the stable, client facing name of err's category.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDuplicate):
		return "conflict"
	case errors.Is(err, ErrValidation):
		return "invalid_input"
	default:
		return "internal"
	}
}
