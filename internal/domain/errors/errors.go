package errors

import (
	"fmt"
	"net/http"

	"bikeshare/internal/errors"
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

// WithDetails returns a copy of the error carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by code so that copies made with WithDetails still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Catalog errors
	ErrBikeNotFound = NewBaseError(
		http.StatusNotFound,
		"BIKE_NOT_FOUND",
		"Bike not found",
		"",
	)

	ErrBikeUnavailable = NewBaseError(
		http.StatusConflict,
		"BIKE_UNAVAILABLE",
		"Bike is not available for reservation",
		"",
	)

	// Booking errors
	ErrReservationNotFound = NewBaseError(
		http.StatusNotFound,
		"RESERVATION_NOT_FOUND",
		"Reservation not found",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Reservation cannot move to the requested status",
		"",
	)

	ErrInvalidTimeWindow = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIME_WINDOW",
		"Reservation end must be after its start",
		"",
	)

	// Identity errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid or expired session",
		"",
	)

	// Review errors
	ErrNotReviewable = NewBaseError(
		http.StatusConflict,
		"NOT_REVIEWABLE",
		"Only your completed reservations can be reviewed",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"Rating must be between 0.5 and 5 in half steps",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidUpstreamPayload = NewBaseError(
		http.StatusBadGateway,
		"INVALID_UPSTREAM_PAYLOAD",
		"Marketplace returned an unexpected payload",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// passthroughStatuses are upstream statuses that are meaningful to the caller as-is.
var passthroughStatuses = map[int]bool{
	http.StatusBadRequest:          true,
	http.StatusUnauthorized:        true,
	http.StatusForbidden:           true,
	http.StatusNotFound:            true,
	http.StatusConflict:            true,
	http.StatusUnprocessableEntity: true,
}

// UpstreamError is a failed call to the remote marketplace API, implementing the AppError interface.
// StatusCode is 0 when the request never produced a response.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       string
	err        error
}

// NewUpstreamError creates an upstream error for a non-2xx response or a transport failure.
func NewUpstreamError(operation string, statusCode int, body string, cause error) *UpstreamError {
	return &UpstreamError{
		Operation:  operation,
		StatusCode: statusCode,
		Body:       body,
		err:        cause,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("marketplace %s: %v", e.Operation, e.err)
	}

	return fmt.Sprintf("marketplace %s: status %d", e.Operation, e.StatusCode)
}

// Unwrap returns the transport error, if any.
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	if passthroughStatuses[e.StatusCode] {
		return e.StatusCode
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILED"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return "Marketplace request failed"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.Error()
}

// PipelineError reports that a dashboard could not be built because a primary fetch failed.
type PipelineError struct {
	Dashboard string
	err       error
}

// NewPipelineError creates a pipeline error wrapping the primary failure.
func NewPipelineError(dashboard string, cause error) *PipelineError {
	return &PipelineError{Dashboard: dashboard, err: cause}
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s dashboard: %v", e.Dashboard, e.err)
}

// Unwrap returns the primary failure.
func (e *PipelineError) Unwrap() error {
	return e.err
}

// HTTPCode keeps a client-side upstream status, anything else is a bad gateway.
func (e *PipelineError) HTTPCode() int {
	var upstream *UpstreamError
	if errors.As(e.err, &upstream) && upstream.HTTPCode() < http.StatusInternalServerError {
		return upstream.HTTPCode()
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *PipelineError) ErrorCode() string {
	return "PIPELINE_FAILED"
}

// Message returns the user-friendly error message
func (e *PipelineError) Message() string {
	return "Dashboard could not be loaded"
}

// Details returns detailed error information
func (e *PipelineError) Details() string {
	return e.err.Error()
}
