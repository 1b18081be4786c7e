package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed call.
type Kind int

const (
	// KindUnreachable means no HTTP response was received.
	KindUnreachable Kind = iota + 1
	// KindServer means the server answered with a non-success status.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindServer:
		return "server_error"
	}
	return "unknown"
}

const messagePrefix = "An error occurred while connecting to the server. "

// Error is the normalized failure of a task API call. Its message is meant to
// be shown to the end user as-is.
type Error struct {
	Kind       Kind
	Endpoint   string // {base}/tasks
	StatusCode int    // 0 when unreachable
	Payload    string // server-supplied error body, stringified
	Err        error  // underlying transport or decode error, if any
}

func (e *Error) Error() string {
	if e.Kind == KindUnreachable {
		return messagePrefix + "Please ensure the backend server is running at " + e.Endpoint
	}
	return fmt.Sprintf("%sServer returned code %d. Error: %s", messagePrefix, e.StatusCode, e.Payload)
}

func (e *Error) Unwrap() error { return e.Err }

func newUnreachableError(endpoint string, err error) *Error {
	return &Error{Kind: KindUnreachable, Endpoint: endpoint, Err: err}
}

func newServerError(endpoint string, status int, body []byte) *Error {
	return &Error{Kind: KindServer, Endpoint: endpoint, StatusCode: status, Payload: stringifyPayload(body)}
}

// stringifyPayload renders an error body for the message: a JSON string is
// used as its value, other JSON is compacted, anything else is kept as text.
func stringifyPayload(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "null"
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return string(trimmed)
	}
	if s, ok := v.(string); ok {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}

// IsUnreachable reports whether err is a normalized unreachable failure.
func IsUnreachable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnreachable
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
