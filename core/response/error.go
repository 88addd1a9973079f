package response

import (
	"net/http"

	"github.com/dmitrymomot/cmsnav/core/handler"
)

// Error returns a response that propagates err to the error handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}

// NotFound propagates ErrNotFound.
func NotFound() handler.Response {
	return Error(ErrNotFound)
}
