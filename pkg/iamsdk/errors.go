package iamsdk

import "fmt"

// ============================================================================
// Error Taxonomy
// ============================================================================
//
// Every failure an operation can produce is one of the five typed errors
// below, ordered by where in the request cycle it is detected:
//
//  1. TransportError       - no HTTP response was obtained
//  2. APIError             - HTTP status outside the 2xx range
//  3. DecodeError          - body does not parse as the expected envelope
//  4. AuthError            - envelope parsed but success == false
//  5. InvalidResponseError - success == true but the payload is missing
//
// Nothing is retried or suppressed; callers branch with errors.As.

// TransportError reports a connection, DNS or timeout failure that occurred
// before any HTTP response was received. It wraps the underlying cause.
type TransportError struct {
	// Op is the name of the failing operation (e.g. "verify")
	Op string

	// Err is the underlying transport failure
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports an HTTP status outside the 2xx range. Callers may branch
// on StatusCode.
type APIError struct {
	// Op is the name of the failing operation
	Op string

	// StatusCode is the HTTP status code returned by the server
	StatusCode int

	// Message describes the failure and includes the status
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// DecodeError reports a body that could not be encoded for the request or
// decoded from the response. It wraps the underlying JSON failure.
type DecodeError struct {
	// Op is the name of the failing operation
	Op string

	// Err is the underlying codec failure
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding response: %v", e.Op, e.Err)
}

// Unwrap returns the underlying codec failure.
func (e *DecodeError) Unwrap() error { return e.Err }

// AuthError reports an envelope whose success flag is false. Message carries
// the server-supplied reason, or a per-operation fallback when the server
// sent none.
type AuthError struct {
	// Op is the name of the failing operation
	Op string

	// Message is the human-readable failure reason
	Message string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// InvalidResponseError reports an envelope that claims success but is
// missing its expected payload. This indicates a contract violation by the
// server, not a caller error.
type InvalidResponseError struct {
	// Op is the name of the failing operation
	Op string

	// Message describes the missing payload
	Message string
}

// Error implements the error interface.
func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("%s: invalid response: %s", e.Op, e.Message)
}
