package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for the recoverable failure modes of the booking domain.
const (
	CodeNotFound   = "notFound"
	CodeValidation = "validationError"
	CodeTransition = "transitionError"
)

// DomainError is a typed, recoverable error surfaced to clients.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewNotFoundError reports a missing booking/washer/session.
func NewNotFoundError(format string, args ...any) error {
	return &DomainError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError reports missing or malformed input.
func NewValidationError(format string, args ...any) error {
	return &DomainError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// NewTransitionError reports a state transition that is not legal from the current state.
func NewTransitionError(format string, args ...any) error {
	return &DomainError{Code: CodeTransition, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the domain error code, or "" for untyped errors.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// HTTPStatus maps a domain error to its response status.
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	case CodeTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
