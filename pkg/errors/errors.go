package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a user-facing message.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Common HTTP errors.
var (
	ErrBadRequest          = NewHTTPError(400, "Bad request")
	ErrUnauthorized        = NewHTTPError(401, "Unauthorized")
	ErrForbidden           = NewHTTPError(403, "Forbidden")
	ErrNotFound            = NewHTTPError(404, "Not found")
	ErrInternalServerError = NewHTTPError(500, "Something went wrong")
)
