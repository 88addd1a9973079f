// Package handler defines the response-returning handler shape used by every
// HTTP endpoint of the site.
//
// A Func inspects the request and returns a Response; the Response does the
// writing and may fail. Wrap adapts a Func to http.HandlerFunc so it mounts
// on any router, and hands rendering errors to an ErrorHandler:
//
//	r.Get("/projects", handler.Wrap(func(r *http.Request) handler.Response {
//		projects, err := svc.List(r.Context())
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.Template(tmpl, "layout", projects)
//	}, response.ErrorHandler(log)))
package handler
