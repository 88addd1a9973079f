package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
)

// goose keeps its settings in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration found in fsys.
func Migrate(ctx context.Context, db *sql.DB, fsys fs.FS, cfg Config, log *slog.Logger) error {
	return withGoose(fsys, cfg, log, func() error {
		return goose.UpContext(ctx, db, cfg.MigrationsPath)
	})
}

// Rollback reverts the most recent migration.
func Rollback(ctx context.Context, db *sql.DB, fsys fs.FS, cfg Config, log *slog.Logger) error {
	return withGoose(fsys, cfg, log, func() error {
		return goose.DownContext(ctx, db, cfg.MigrationsPath)
	})
}

// Status logs the state of every migration.
func Status(ctx context.Context, db *sql.DB, fsys fs.FS, cfg Config, log *slog.Logger) error {
	return withGoose(fsys, cfg, log, func() error {
		return goose.StatusContext(ctx, db, cfg.MigrationsPath)
	})
}

func withGoose(fsys fs.FS, cfg Config, log *slog.Logger, fn func() error) error {
	if fsys == nil {
		return ErrMigrationsFSNotProvided
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "."
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{log: log})
	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err := fn(); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

type gooseLogger struct {
	log *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info(fmt.Sprintf(format, v...), slog.String("component", "migrations"))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(fmt.Sprintf(format, v...), slog.String("component", "migrations"))
}
