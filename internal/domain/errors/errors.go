// Package errors defines the application error taxonomy: local validation
// failures that never reach the network, authentication failures, transport
// failures, and structured rejections from the backend.
package errors

import (
	"net/http"

	"ulaz/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors. These redirect the shell to the login
	// view; the triggering intent is preserved by the caller.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"email or password is incorrect",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"sign in to continue",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	// Validation errors. All of these are raised locally, before any
	// network call is issued.
	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"passwords do not match",
		"",
	)

	ErrInvalidEvent = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EVENT",
		"event is missing an identifier",
		"",
	)

	ErrUnknownEvent = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_EVENT",
		"event is not present in the catalog",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"quantity must be at least 1",
		"",
	)

	ErrBodyTooShort = NewBaseError(
		http.StatusBadRequest,
		"COMMENT_TOO_SHORT",
		"comment must be at least 3 characters long",
		"",
	)

	ErrRatingOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"RATING_OUT_OF_RANGE",
		"rating must be between 1 and 5",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Workflow errors.
	ErrNotAttended = NewBaseError(
		http.StatusForbidden,
		"NOT_ATTENDED",
		"only past events you hold a ticket for can be reviewed",
		"",
	)

	ErrAlreadyReviewed = NewBaseError(
		http.StatusConflict,
		"ALREADY_REVIEWED",
		"you have already reviewed this event",
		"",
	)

	ErrPurchaseInFlight = NewBaseError(
		http.StatusConflict,
		"PURCHASE_IN_FLIGHT",
		"a purchase is already being processed",
		"",
	)

	ErrReviewInFlight = NewBaseError(
		http.StatusConflict,
		"REVIEW_IN_FLIGHT",
		"a review is already being submitted",
		"",
	)

	ErrPurchaseState = NewBaseError(
		http.StatusConflict,
		"PURCHASE_STATE",
		"operation is not valid in the current purchase state",
		"",
	)

	// Transport errors.
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"the ticketing service is unreachable",
		"",
	)

	// General errors.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// RejectedError is a non-2xx backend response that carried a structured
// error message. The message is surfaced to the user as-is.
type RejectedError struct {
	status  int
	message string
}

// NewRejected creates a RejectedError from a backend status and message.
func NewRejected(status int, message string) AppError {
	if message == "" {
		message = http.StatusText(status)
	}

	return &RejectedError{status: status, message: message}
}

// Error implements the error interface
func (e *RejectedError) Error() string {
	return e.message
}

// HTTPCode returns the backend's status code unchanged.
func (e *RejectedError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *RejectedError) ErrorCode() string {
	return "REJECTED"
}

// Message returns the backend's error message verbatim.
func (e *RejectedError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *RejectedError) Details() string {
	return ""
}
