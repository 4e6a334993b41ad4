package needle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	// ErrInvalidURL is returned when a configured URL has no parseable host,
	// so the search URL cannot be derived from it.
	ErrInvalidURL = errors.New("needle: invalid url")

	// ErrMissingResult is wrapped in a DecodeError when a successful response
	// carries no "result" member (or a null one).
	ErrMissingResult = errors.New("needle: response has no result")

	// ErrMissingErrorBody is wrapped in a DecodeError when a failed response
	// carries no "error" member.
	ErrMissingErrorBody = errors.New("needle: error response has no error body")
)

// Error is a failure reported by the Needle API, or a request rejected by
// the client before it was sent. Code follows HTTP status semantics.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Error renders the error as its JSON object.
func (e *Error) Error() string {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf("needle: %d %s", e.Code, e.Message)
	}
	return string(b)
}

// TransportError means no HTTP response was received: dial and TLS
// failures, timeouts, cancelled contexts, or a body that could not be read.
type TransportError struct {
	Op     string
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("needle: %s %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request hit the client timeout or the
// context deadline.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// DecodeError means a response arrived but did not follow the
// {"result": ...} / {"error": {...}} envelope.
type DecodeError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("needle: %s: decode %d response: %v", e.Op, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsTransportError reports whether err means no response was received.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsNotFound reports whether the API answered 404.
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == http.StatusNotFound
}

// IsValidationError reports whether the request was rejected as invalid
// (422), either by the API or by the client before sending.
func IsValidationError(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == http.StatusUnprocessableEntity
}

func validationError(message string) *Error {
	return &Error{Code: http.StatusUnprocessableEntity, Message: message}
}
