package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/cmsnav/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	Skip   func(r *http.Request) bool
	Logger *slog.Logger
	// LogLevel for successful requests (default: info). Client errors are
	// logged at warn and server errors at error.
	LogLevel slog.Level
	// SlowRequestThreshold upgrades slow requests to warn (default: 5s).
	SlowRequestThreshold time.Duration
	// Component name for structured logging (default: "http").
	Component string
}

// Logging logs one line per request with the given logger.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig logs method, path, status, size and latency of every request.
func LoggingWithConfig(cfg LoggingConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			latency := time.Since(start)

			level := cfg.LogLevel
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest, latency > cfg.SlowRequestThreshold:
				level = slog.LevelWarn
			}

			requestID, _ := GetRequestID(r.Context())
			cfg.Logger.LogAttrs(r.Context(), level, "request completed",
				logger.Component(cfg.Component),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(status),
				logger.RequestID(requestID),
				logger.RemoteAddr(r.RemoteAddr),
				slog.Int("bytes_out", ww.BytesWritten()),
				logger.Latency(latency),
			)
		})
	}
}
