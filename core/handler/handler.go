package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse is reported when a Func returns no response.
var ErrNilResponse = errors.New("handler returned nil response")

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
type Response func(w http.ResponseWriter, r *http.Request) error

// Func builds the response for a request.
type Func func(r *http.Request) Response

// ErrorHandler renders an error returned by a Response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Wrap adapts fn to http.HandlerFunc. A nil eh falls back to a plain 500.
func Wrap(fn Func, eh ErrorHandler) http.HandlerFunc {
	if eh == nil {
		eh = defaultErrorHandler
	}
	return func(w http.ResponseWriter, r *http.Request) {
		resp := fn(r)
		if resp == nil {
			eh(w, r, ErrNilResponse)
			return
		}
		if err := resp(w, r); err != nil {
			eh(w, r, err)
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
