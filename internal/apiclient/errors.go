package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable means the request never produced an HTTP response
	ErrUnreachable = errors.New("property API unreachable")
	// ErrCircuitOpen means the breaker rejected the call without trying
	ErrCircuitOpen = errors.New("circuit breaker is open")
	// ErrDecode means the response body was not in the expected shape
	ErrDecode = errors.New("unexpected response body")
)

// StatusError is a non-2xx response from the property API
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsConnectivity reports whether err means the server could not be reached
// (as opposed to the server answering with an error or a malformed body).
func IsConnectivity(err error) bool {
	return errors.Is(err, ErrUnreachable) || errors.Is(err, ErrCircuitOpen)
}

// StatusCode extracts the HTTP status of a StatusError, or 0
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
