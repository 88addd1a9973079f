package response

import (
	"net/http"

	"github.com/dmitrymomot/cmsnav/core/handler"
)

// Redirect creates a 302 Found response.
// HTMX requests get HX-Location with 200 OK instead.
func Redirect(url string) handler.Response {
	return redirect(url, http.StatusFound)
}

// RedirectSeeOther creates a 303 See Other response, the status to use after
// a successful form submission.
func RedirectSeeOther(url string) handler.Response {
	return redirect(url, http.StatusSeeOther)
}

func redirect(url string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if r.Header.Get(HeaderHXRequest) == "true" {
			w.Header().Set(HeaderHXLocation, url)
			w.WriteHeader(http.StatusOK)
			return nil
		}
		http.Redirect(w, r, url, status)
		return nil
	}
}
