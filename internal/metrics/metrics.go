// Package metrics exposes the Prometheus counters of the application.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the application counters around one registry.
type Metrics struct {
	registry *prometheus.Registry

	Requests     *Counter
	MenuRenders  *Counter
	AdminChanges *Counter
}

// New registers the counters together with the Go runtime and process
// collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:     reg,
		Requests:     NewCounterWithRegistry(reg, "http_requests_total", "HTTP requests by method, route and status.", "method", "route", "status"),
		MenuRenders:  NewCounterWithRegistry(reg, "menu_renders_total", "Menu renders by mode.", "mode"),
		AdminChanges: NewCounterWithRegistry(reg, "admin_changes_total", "Admin changes by resource and action.", "resource", "action"),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for tests and custom exporters.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// MenuRendered implements the site metrics hook.
func (m *Metrics) MenuRendered(mode string) {
	m.MenuRenders.Increment(mode)
}

// AdminChanged implements the admin metrics hook.
func (m *Metrics) AdminChanged(resource, action string) {
	m.AdminChanges.Increment(resource, action)
}

// Middleware counts requests. The route label is the chi route pattern so
// label cardinality stays bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.Increment(r.Method, route, strconv.Itoa(status))
	})
}
