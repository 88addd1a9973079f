package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmsnav/core/i18n"
	"github.com/dmitrymomot/cmsnav/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a uuid", func(t *testing.T) {
		var captured string
		h := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := middleware.GetRequestID(r.Context())
			assert.True(t, ok)
			captured = id
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, captured, 36)
		assert.Equal(t, captured, w.Header().Get("X-Request-ID"))
	})

	t.Run("reuses the client id when configured", func(t *testing.T) {
		h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true})(http.NotFoundHandler())
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Request-ID", "abc")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
	})

	t.Run("extractor feeds log records", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string { return "fixed" },
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attr, ok := middleware.RequestIDExtractor(r.Context())
			require.True(t, ok)
			log.LogAttrs(r.Context(), slog.LevelInfo, "inside", attr)
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, buf.String(), "request_id=fixed")
	})
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return "req-1" },
	})(middleware.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "missing")
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status_code=404")
	assert.Contains(t, out, "path=/nope")
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "bytes_out=7")
}

func TestLocale(t *testing.T) {
	t.Parallel()

	in, err := i18n.New(
		i18n.WithTranslations("en", "site", map[string]any{"hello": "Hello"}),
		i18n.WithTranslations("de", "site", map[string]any{"hello": "Hallo"}),
	)
	require.NoError(t, err)

	probe := func(path, accept string) (string, string) {
		var locale, greeting string
		h := middleware.Locale(in, "site")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale = middleware.GetLocale(r.Context())
			tr, ok := middleware.GetTranslator(r.Context())
			require.True(t, ok)
			greeting = tr.T("hello")
			assert.Equal(t, path, r.URL.Path)
		}))
		r := httptest.NewRequest(http.MethodGet, path, nil)
		if accept != "" {
			r.Header.Set("Accept-Language", accept)
		}
		h.ServeHTTP(httptest.NewRecorder(), r)
		return locale, greeting
	}

	tests := []struct {
		name, path, accept, locale, greeting string
	}{
		{"path prefix wins", "/de/projects", "en", "de", "Hallo"},
		{"bare locale path", "/de", "", "de", "Hallo"},
		{"accept language", "/projects", "de-DE,de;q=0.9", "de", "Hallo"},
		{"default", "/projects", "", "en", "Hello"},
		{"unknown prefix is a page slug", "/fr/projects", "", "en", "Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locale, greeting := probe(tt.path, tt.accept)
			assert.Equal(t, tt.locale, locale)
			assert.Equal(t, tt.greeting, greeting)
		})
	}

	assert.Panics(t, func() { middleware.Locale(nil, "site") })
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	h := middleware.BodyLimit(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("too large")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	middleware.SecurityHeaders()(http.NotFoundHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))

	cfg := middleware.BalancedSecurity
	cfg.IsDevelopment = true
	cfg.CustomHeaders = map[string]string{"X-Site": "cmsnav"}
	w = httptest.NewRecorder()
	middleware.SecurityHeadersWithConfig(cfg)(http.NotFoundHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Equal(t, "cmsnav", w.Header().Get("X-Site"))
}
