package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is matched by responses with status 401.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrServerUnreachable wraps transport failures: the request never got
	// an HTTP response.
	ErrServerUnreachable = errors.New("server unreachable")

	// ErrEmptyEntity is returned when push or pull is called without an
	// entity name.
	ErrEmptyEntity = errors.New("entity is empty")
)

// ErrorPayload is the structured body the server sends with error
// responses.
type ErrorPayload struct {
	Error string `json:"error"`
}

// HTTPError is a non-2xx response from the server.
type HTTPError struct {
	StatusCode int
	// Body is the raw, trimmed response body.
	Body string
	// Payload is set when Body decodes as [ErrorPayload].
	Payload *ErrorPayload
}

func (e *HTTPError) Error() string {
	msg := e.Body
	if e.Payload != nil && e.Payload.Error != "" {
		msg = e.Payload.Error
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *HTTPError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}
