package shared

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error surface every service returns to its caller. The
// HTTP layer maps it onto a response; in-process consumers switch on ErrorType.
type AppError struct {
	StatusCode int         `json:"-"`
	ErrorType  string      `json:"error"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

const (
	ErrTypeUnauthenticated    = "UNAUTHENTICATED"
	ErrTypeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrTypeNotFound           = "NOT_FOUND"
	ErrTypeOperationFailed    = "OPERATION_FAILED"
)

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorType, e.Message)
}

func NewAppError(statusCode int, errorType, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		ErrorType:  errorType,
		Message:    message,
	}
}

func ErrUnauthenticated(message string) *AppError {
	if message == "" {
		message = "No token provided"
	}
	return NewAppError(http.StatusUnauthorized, ErrTypeUnauthenticated, message)
}

func ErrInvalidCredentials() *AppError {
	return NewAppError(http.StatusUnauthorized, ErrTypeInvalidCredentials, "Invalid email or password")
}

func ErrNotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, ErrTypeNotFound, message)
}

func ErrOperationFailed(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, ErrTypeOperationFailed, message)
}

// GetAppError unwraps err down to an *AppError if one is in the chain.
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType reports whether err carries the given app error type.
func IsErrorType(err error, errorType string) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.ErrorType == errorType
}
