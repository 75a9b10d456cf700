package errors

import (
	"errors"
	"net/http"
)

// Exception is a domain error carrying the HTTP status it should surface
// as. The sentinel values in this package are compared with errors.Is, so a
// missing item is an ordinary return value callers branch on rather than a
// panic or an opaque failure.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode extracts the HTTP status from an Exception anywhere in the
// chain, defaulting to 500 for unknown errors.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
