package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cmsnav/app/site"
	"github.com/dmitrymomot/cmsnav/core/config"
	"github.com/dmitrymomot/cmsnav/core/logger"
	"github.com/dmitrymomot/cmsnav/integration/database/pg"
	"github.com/dmitrymomot/cmsnav/internal/db/migrations"
)

// Version is set at build time.
var Version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cmsnav",
		Short:         "CMS site with page navigation and project screens",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Example: `  # Serve with the schema already in place
  cmsnav serve

  # Apply pending migrations first
  cmsnav serve --migrate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg site.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func serve(ctx context.Context, cfg site.Config, migrate bool) error {
	app, err := site.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if migrate {
		if err := app.Migrate(ctx); err != nil {
			return err
		}
	}
	return app.Run(ctx)
}

// migrateConfig is the part of the configuration migrations need.
type migrateConfig struct {
	DB       pg.Config
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect database migrations",
		Long:      "Without an argument migrate applies every pending migration. down rolls back the latest one.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}

			var cfg migrateConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			log := logger.New(
				logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
				logger.WithOutput(cmd.ErrOrStderr()),
			)
			return runMigrations(cmd.Context(), cfg.DB, direction, log)
		},
	}
}

func runMigrations(ctx context.Context, cfg pg.Config, direction string, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := pg.OpenDB(pool)
	defer db.Close()

	switch direction {
	case "up":
		return pg.Migrate(ctx, db, migrations.FS, cfg, log)
	case "down":
		return pg.Rollback(ctx, db, migrations.FS, cfg, log)
	case "status":
		return pg.Status(ctx, db, migrations.FS, cfg, log)
	default:
		return fmt.Errorf("unknown migrate direction %q", direction)
	}
}
