package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and business code the
// delivery layer should answer with.
type HTTPError struct {
	Code       int    `json:"code"`
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError creates an HTTPError whose business code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		Code:       statusCode,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewBadRequestError creates a 400 HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
