package admin

import "github.com/go-chi/chi/v5"

// BasePath is where the project screens are mounted.
const BasePath = "/refinery/projects"

// SetupRoutes registers the project screens on router.
func SetupRoutes(router chi.Router, h *Handlers) {
	router.Route(BasePath, func(r chi.Router) {
		r.Get("/", h.wrap(h.Index))
		r.Get("/new", h.wrap(h.New))
		r.Post("/", h.wrap(h.Create))
		r.Post("/update_positions", h.wrap(h.UpdatePositions))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/edit", h.wrap(h.Edit))
			r.Post("/", h.wrap(h.Update))
			r.Put("/", h.wrap(h.Update))
			r.Patch("/", h.wrap(h.Update))
			r.Post("/delete", h.wrap(h.Destroy))
			r.Delete("/", h.wrap(h.Destroy))
		})
	})
}
