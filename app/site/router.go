package site

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/cmsnav/core/handler"
	"github.com/dmitrymomot/cmsnav/core/health"
	"github.com/dmitrymomot/cmsnav/core/i18n"
	"github.com/dmitrymomot/cmsnav/core/response"
	"github.com/dmitrymomot/cmsnav/internal/admin"
	"github.com/dmitrymomot/cmsnav/internal/locales"
	"github.com/dmitrymomot/cmsnav/internal/metrics"
	public "github.com/dmitrymomot/cmsnav/internal/site"
	"github.com/dmitrymomot/cmsnav/middleware"
)

// Routes lists what NewRouter mounts. Metrics, I18n, Admin and Site are
// required.
type Routes struct {
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	I18n        *i18n.I18n
	Admin       *admin.Handlers
	Site        *public.Handlers
	Checks      []func(context.Context) error
	BodyLimit   int64
	Development bool
}

// NewRouter builds the application router. The public site is mounted last
// because its catch-all route answers every unmatched GET.
func NewRouter(rt Routes) http.Handler {
	if rt.Logger == nil {
		rt.Logger = slog.New(slog.DiscardHandler)
	}
	security := middleware.BalancedSecurity
	security.IsDevelopment = rt.Development

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		rt.Metrics.Middleware,
		middleware.Logging(rt.Logger),
		chimw.Recoverer,
		middleware.SecurityHeadersWithConfig(security),
		middleware.BodyLimit(rt.BodyLimit),
		middleware.Locale(rt.I18n, locales.Namespace),
	)

	eh := response.ErrorHandler(rt.Logger)
	r.Get("/health/live", handler.Wrap(health.Liveness, eh))
	r.Get("/health/ready", handler.Wrap(health.Readiness(rt.Logger, rt.Checks...), eh))
	r.Method(http.MethodGet, "/metrics", rt.Metrics.Handler())

	admin.SetupRoutes(r, rt.Admin)
	public.SetupRoutes(r, rt.Site)
	return r
}
