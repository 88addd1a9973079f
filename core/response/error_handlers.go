package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cmsnav/core/handler"
	"github.com/dmitrymomot/cmsnav/core/logger"
)

type statusCoder interface {
	StatusCode() int
}

// AsHTTPError converts any error to an HTTPError. Errors that already are one
// pass through, errors with a StatusCode method keep their status, anything
// else becomes 500.
func AsHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	base, ok := httpErrorsByStatus[status]
	if !ok {
		base = newHTTPError(status, "error")
		if base.Message == "" {
			base = ErrInternalServerError
		}
	}
	return base.WithError(err)
}

// ErrorHandler renders errors as plain text. Server errors are logged with
// their cause and rendered without it.
func ErrorHandler(log *slog.Logger) handler.ErrorHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		httpErr := AsHTTPError(err)
		if httpErr.Status >= http.StatusInternalServerError {
			log.ErrorContext(r.Context(), "request failed",
				logger.Component("http"),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(httpErr.Status),
				logger.Error(err),
			)
		}
		_ = StringWithStatus(httpErr.Message, httpErr.Status)(w, r)
	}
}
