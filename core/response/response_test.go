package response_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmsnav/core/response"
)

func serve(t *testing.T, resp func(http.ResponseWriter, *http.Request) error, r *http.Request) (*httptest.ResponseRecorder, error) {
	t.Helper()
	if r == nil {
		r = httptest.NewRequest(http.MethodGet, "/", nil)
	}
	w := httptest.NewRecorder()
	return w, resp(w, r)
}

func TestTextResponses(t *testing.T) {
	t.Parallel()

	w, err := serve(t, response.String("hi"), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "hi", w.Body.String())

	w, err = serve(t, response.HTMLWithStatus("<b>x</b>", 0), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	w, err = serve(t, response.NoContent(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	set := template.Must(template.New("root").Parse(`<h1>{{.}}</h1>{{define "item"}}<li>{{.}}</li>{{end}}`))

	tests := []struct {
		name   string
		resp   func(http.ResponseWriter, *http.Request) error
		status int
		body   string
	}{
		{"root template", response.Template(set, "", "Hello"), http.StatusOK, "<h1>Hello</h1>"},
		{"named template", response.Template(set, "item", "a&b"), http.StatusOK, "<li>a&amp;b</li>"},
		{"custom status", response.TemplateWithStatus(set, "item", "x", http.StatusUnprocessableEntity), http.StatusUnprocessableEntity, "<li>x</li>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := serve(t, tt.resp, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}

	t.Run("failed execution writes nothing", func(t *testing.T) {
		w, err := serve(t, response.Template(set, "missing", nil), nil)
		require.Error(t, err)
		assert.Empty(t, w.Body.String())
		assert.Empty(t, w.Header().Get("Content-Type"))
	})

	t.Run("nil template", func(t *testing.T) {
		_, err := serve(t, response.Template(nil, "", nil), nil)
		assert.ErrorIs(t, err, response.ErrNilTemplate)
	})
}

func TestTempl(t *testing.T) {
	t.Parallel()

	type key struct{}
	c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<p>%v</p>", ctx.Value(key{}))
		return err
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), key{}, "ctx"))

	w, err := serve(t, response.TemplWithStatus(c, http.StatusNotFound), r)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "<p>ctx</p>", w.Body.String())

	boom := errors.New("boom")
	_, err = serve(t, response.Templ(templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })), nil)
	assert.ErrorIs(t, err, boom)

	w, err = serve(t, response.Templ(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("plain request", func(t *testing.T) {
		w, err := serve(t, response.Redirect("/done"), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/done", w.Header().Get("Location"))
	})

	t.Run("see other after post", func(t *testing.T) {
		w, err := serve(t, response.RedirectSeeOther("/done"), httptest.NewRequest(http.MethodPost, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("htmx request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set(response.HeaderHXRequest, "true")
		w, err := serve(t, response.RedirectSeeOther("/done"), r)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/done", w.Header().Get(response.HeaderHXLocation))
		assert.Empty(t, w.Header().Get("Location"))
	})
}

type teapotErr struct{}

func (teapotErr) Error() string   { return "short and stout" }
func (teapotErr) StatusCode() int { return http.StatusTeapot }

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNotFound, response.AsHTTPError(response.ErrNotFound).Status)
	assert.Equal(t, http.StatusNotFound, response.AsHTTPError(fmt.Errorf("wrapped: %w", response.ErrNotFound)).Status)
	assert.Equal(t, http.StatusTeapot, response.AsHTTPError(teapotErr{}).Status)

	cause := errors.New("db down")
	httpErr := response.AsHTTPError(cause)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.ErrorIs(t, httpErr, cause)
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	eh := response.ErrorHandler(log)

	t.Run("client errors are rendered and not logged", func(t *testing.T) {
		w := httptest.NewRecorder()
		eh(w, httptest.NewRequest(http.MethodGet, "/x", nil), response.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Not Found", w.Body.String())
	})

	t.Run("server errors hide the cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		eh(w, httptest.NewRequest(http.MethodGet, "/y", nil), errors.New("secret dsn"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret")
	})

	assert.Contains(t, buf.String(), "secret dsn")
	assert.NotContains(t, buf.String(), "path=/x")
}
