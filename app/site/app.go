package site

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/cmsnav/core/logger"
	"github.com/dmitrymomot/cmsnav/core/server"
	"github.com/dmitrymomot/cmsnav/integration/database/pg"
	"github.com/dmitrymomot/cmsnav/integration/database/redis"
	"github.com/dmitrymomot/cmsnav/internal/admin"
	"github.com/dmitrymomot/cmsnav/internal/db/migrations"
	"github.com/dmitrymomot/cmsnav/internal/locales"
	"github.com/dmitrymomot/cmsnav/internal/metrics"
	"github.com/dmitrymomot/cmsnav/internal/page"
	"github.com/dmitrymomot/cmsnav/internal/project"
	public "github.com/dmitrymomot/cmsnav/internal/site"
)

// App owns the connections and the HTTP handler of a running site.
type App struct {
	cfg     Config
	log     *slog.Logger
	pool    *pgxpool.Pool
	db      *sql.DB
	redis   goredis.UniversalClient
	metrics *metrics.Metrics
	handler http.Handler
}

type Option func(*App)

// WithLogger replaces the logger built from Config.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// New connects to Postgres and Redis and wires the features. Close releases
// the connections.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	a := &App{
		cfg:     cfg,
		log:     cfg.Logger(),
		metrics: metrics.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	pool, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	a.pool = pool
	a.db = pg.OpenDB(pool)

	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, errors.Join(err, a.Close())
	}
	a.redis = client

	if a.handler, err = a.routes(); err != nil {
		return nil, errors.Join(err, a.Close())
	}
	return a, nil
}

func (a *App) routes() (http.Handler, error) {
	translations, err := locales.New(a.cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}

	pages := page.NewCachedRepository(
		page.NewSQLRepository(a.db),
		redis.NewCache(a.redis, a.cfg.AppName+":"),
		a.cfg.PagesCacheTTL,
		a.log,
	)
	projects := project.NewService(project.NewSQLRepository(a.db), project.WithLogger(a.log))

	adminHandlers, err := admin.NewHandlers(
		projects,
		admin.NewSessionStore([]byte(a.cfg.SessionSecret), a.cfg.IsProduction()),
		translations,
		admin.WithLogger(a.log),
		admin.WithRecorder(a.metrics),
	)
	if err != nil {
		return nil, err
	}

	siteHandlers, err := public.NewHandlers(
		a.cfg.SiteConfig(),
		a.cfg.Menu,
		pages,
		projects,
		translations,
		public.WithLogger(a.log),
		public.WithRecorder(a.metrics),
	)
	if err != nil {
		return nil, err
	}

	return NewRouter(Routes{
		Logger:      a.log,
		Metrics:     a.metrics,
		I18n:        translations,
		Admin:       adminHandlers,
		Site:        siteHandlers,
		Checks:      []func(context.Context) error{pg.Healthcheck(a.pool), redis.Healthcheck(a.redis)},
		BodyLimit:   a.cfg.BodyLimit,
		Development: !a.cfg.IsProduction(),
	}), nil
}

// Handler returns the application router.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Migrate applies the embedded migrations.
func (a *App) Migrate(ctx context.Context) error {
	return pg.Migrate(ctx, a.db, migrations.FS, a.cfg.DB, a.log)
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	srv, err := server.NewFromConfig(a.cfg.Server, server.WithLogger(a.log))
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, a.handler))

	if err := eg.Wait(); err != nil {
		return err
	}
	a.log.InfoContext(ctx, "application stopped", logger.Component("app"))
	return nil
}

// Close releases Redis and Postgres connections.
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.pool != nil {
		a.pool.Close()
	}
	return errors.Join(errs...)
}
