package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cmsnav/core/handler"
	"github.com/dmitrymomot/cmsnav/core/health"
	"github.com/dmitrymomot/cmsnav/core/response"
)

func serve(fn handler.Func) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.Wrap(fn, response.ErrorHandler(nil))(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	rec := serve(health.Liveness)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	rec := serve(health.NoContent)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		checks []func(context.Context) error
		status int
	}{
		{"no checks", nil, http.StatusOK},
		{"all pass", []func(context.Context) error{ok, ok}, http.StatusOK},
		{"one fails", []func(context.Context) error{ok, down}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(health.Readiness(nil, tt.checks...))
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "READY", rec.Body.String())
			}
		})
	}
}
