package api

import (
	"context"
	"errors"
	"net/http"

	cerrors "cloud-cost/internal/errors"
)

// APIError represents a structured API error.
type APIError struct {
	HTTPStatus int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Common API error codes.
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeValidation    = string(cerrors.TypeValidation)
	ErrCodeNotFound      = string(cerrors.TypeNotFound)
	ErrCodeTimeout       = "TIMEOUT"
	ErrCodeInternalError = string(cerrors.TypeInternal)
)

// NewInvalidJSONError reports an undecodable request body.
func NewInvalidJSONError(err error) *APIError {
	return &APIError{
		HTTPStatus: http.StatusBadRequest,
		Code:       ErrCodeInvalidJSON,
		Message:    "Invalid JSON body: " + err.Error(),
	}
}

// NewValidationError creates a validation error with a custom message.
func NewValidationError(field, message string) *APIError {
	return &APIError{
		HTTPStatus: http.StatusBadRequest,
		Code:       ErrCodeValidation,
		Message:    message,
		Field:      field,
	}
}

// MapDomainError maps engine and pricing errors to API errors.
func MapDomainError(err error) *APIError {
	if err == nil {
		return nil
	}

	var ce *cerrors.Error
	switch {
	case errors.As(err, &ce) && ce.Type == cerrors.TypeValidation:
		msg := ce.Message
		if ce.Field != "" {
			msg = ce.Field + ": " + msg
		}
		return NewValidationError(ce.Field, msg)
	case errors.As(err, &ce) && ce.Type == cerrors.TypeNotFound:
		return &APIError{HTTPStatus: http.StatusNotFound, Code: ErrCodeNotFound, Message: ce.Message}
	case errors.Is(err, context.DeadlineExceeded):
		return &APIError{HTTPStatus: http.StatusGatewayTimeout, Code: ErrCodeTimeout, Message: "Request timed out"}
	default:
		return &APIError{
			HTTPStatus: http.StatusInternalServerError,
			Code:       ErrCodeInternalError,
			Message:    "An unexpected error occurred",
		}
	}
}
