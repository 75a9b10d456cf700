package errors

import "net/http"

var ErrToDoItemNotFound = &Exception{
	Message:    "todo item not found",
	StatusCode: http.StatusNotFound,
}
