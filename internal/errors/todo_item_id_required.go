package errors

import "net/http"

var ErrToDoItemIDRequired = &Exception{
	Message:    "todo item id is required",
	StatusCode: http.StatusBadRequest,
}
