// Package logger builds slog loggers for the site and provides attribute
// helpers so log lines use the same keys everywhere.
//
// # Construction
//
//	log := logger.New(
//		logger.WithProduction("cmsnav"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
// WithDevelopment selects a text handler at debug level, WithProduction a JSON
// handler at info level. WithContextExtractors adds attributes pulled from the
// context of every *Context call, which is how request ids reach log lines
// written deep inside repositories.
//
// # Attributes
//
// Helpers return an empty slog.Attr for nil or blank input, so callers never
// need a guard:
//
//	log.Error("save project failed",
//		logger.Component("project"),
//		logger.ProjectID(id),
//		logger.Error(err),
//	)
package logger
