package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error taxonomy of the adaptation layer.
// Callers match them with errors.Is; the typed wrappers below carry the
// diagnostic context.
var (
	// ErrInvalidRequest indicates the caller supplied invalid search input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStationNotFound indicates a free-text station query resolved to
	// zero candidates.
	ErrStationNotFound = errors.New("station not found")

	// ErrUpstreamUnavailable indicates a transport or protocol failure
	// talking to the timetable upstream.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrNotSupported indicates a capability genuinely absent from the
	// wired-in upstream.
	ErrNotSupported = errors.New("operation not supported")

	// ErrInvalidConnection indicates an attempt to construct a connection
	// that violates the domain invariants (e.g., no legs).
	ErrInvalidConnection = errors.New("invalid connection")
)

// NewStationNotFoundError wraps ErrStationNotFound with the query that
// failed to resolve. The query name is part of the user-reportable message.
func NewStationNotFoundError(query string) error {
	return fmt.Errorf("%w: %q", ErrStationNotFound, query)
}

// NewNotSupportedError wraps ErrNotSupported with the operation name and
// guidance for the caller.
func NewNotSupportedError(operation, guidance string) error {
	return fmt.Errorf("%w: %s (%s)", ErrNotSupported, operation, guidance)
}

// WrapInvalidRequest wraps ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// UpstreamError carries transport-level diagnostics for a failed upstream
// call. The raw body is for logs only and must never reach an end user.
type UpstreamError struct {
	// Endpoint is the upstream path that failed.
	Endpoint string

	// StatusCode is the HTTP status, or 0 when the call never completed.
	StatusCode int

	// Body is the raw error body returned by the upstream, possibly empty.
	Body string

	// Err is the underlying error, if any.
	Err error
}

// NewUpstreamError builds an UpstreamError for the given endpoint.
func NewUpstreamError(endpoint string, statusCode int, body string, err error) *UpstreamError {
	return &UpstreamError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("upstream call %s failed", e.Endpoint)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s with status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap lets errors.Is(err, ErrUpstreamUnavailable) succeed, and exposes
// the underlying error chain.
func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUpstreamUnavailable, e.Err}
	}
	return []error{ErrUpstreamUnavailable}
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsStationNotFound reports whether err is or wraps ErrStationNotFound.
func IsStationNotFound(err error) bool {
	return errors.Is(err, ErrStationNotFound)
}

// IsUpstreamUnavailable reports whether err is or wraps ErrUpstreamUnavailable.
func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

// IsNotSupported reports whether err is or wraps ErrNotSupported.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
