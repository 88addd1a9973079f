package site

import "github.com/go-chi/chi/v5"

// SetupRoutes registers the public pages. It must be mounted last: the
// catch-all route answers every GET the other features leave unmatched.
func SetupRoutes(router chi.Router, h *Handlers) {
	router.Get(ProjectsPath, h.wrap(h.Projects))
	router.Get("/", h.wrap(h.Page))
	router.Get("/*", h.wrap(h.Page))
	router.NotFound(h.wrap(h.NotFound))
}
