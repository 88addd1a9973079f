package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cmsnav/core/handler"
	"github.com/dmitrymomot/cmsnav/core/logger"
	"github.com/dmitrymomot/cmsnav/core/response"
)

// Liveness answers "ALIVE".
func Liveness(*http.Request) handler.Response {
	return response.String("ALIVE")
}

func NoContent(*http.Request) handler.Response {
	return response.NoContent()
}

// Readiness runs every check in order and answers 503 on the first failure.
func Readiness(log *slog.Logger, checks ...func(context.Context) error) handler.Func {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(r *http.Request) handler.Response {
		ctx := r.Context()
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Component("health"), logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.String("READY")
	}
}
