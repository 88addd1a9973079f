// Package response provides handler.Response constructors for HTML pages,
// redirects and errors.
//
// Template buffers html/template output so a failing template never leaves a
// half written page; Templ streams a templ component with the request context.
// Redirects are HTMX aware: when the request carries HX-Request the target is
// sent in HX-Location with 200 instead of a 3xx.
//
// Errors are values. Return response.Error(err) from a handler and let the
// ErrorHandler passed to handler.Wrap pick the status: HTTPError carries its
// own, any error with a StatusCode() int method is honoured, everything else
// becomes 500.
package response
