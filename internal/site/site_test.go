package site_test

import (
	"context"
	"errors"
	"html"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmsnav/core/markup"
	"github.com/dmitrymomot/cmsnav/core/menu"
	"github.com/dmitrymomot/cmsnav/internal/locales"
	"github.com/dmitrymomot/cmsnav/internal/page"
	"github.com/dmitrymomot/cmsnav/internal/project"
	"github.com/dmitrymomot/cmsnav/internal/site"
	"github.com/dmitrymomot/cmsnav/middleware"
)

func ptr(v int64) *int64 { return &v }

type pageRepo struct {
	pages   []page.Page
	byPath  map[string]page.Page
	listErr error
}

func newPageRepo() *pageRepo {
	home := page.Page{ID: 1, Title: "Home", Slug: "home", LinkURL: "/", ShowInMenu: true, Body: "<p>Welcome.</p>"}
	services := page.Page{ID: 2, Title: "Services", Slug: "services", ShowInMenu: true, Body: "<p>What we do.</p>"}
	consulting := page.Page{ID: 3, ParentID: ptr(2), Title: "Consulting", Slug: "consulting", ShowInMenu: true, Body: "<p>Advice.</p>"}
	projects := page.Page{ID: 5, Title: "Projects", Slug: "projects", LinkURL: "/projects", ShowInMenu: true, Body: "<p>Selected work.</p>"}
	return &pageRepo{
		pages: []page.Page{home, services, projects, consulting},
		byPath: map[string]page.Page{
			"/":                    home,
			"/services":            services,
			"/services/consulting": consulting,
			"/projects":            projects,
		},
	}
}

func (r *pageRepo) ListMenu(context.Context) ([]page.Page, error) {
	return r.pages, r.listErr
}

func (r *pageRepo) FindByPath(_ context.Context, path string) (page.Page, error) {
	if p, ok := r.byPath[path]; ok {
		return p, nil
	}
	return page.Page{}, page.ErrNotFound
}

type projectList []project.Project

func (l projectList) List(context.Context) ([]project.Project, error) {
	return l, nil
}

type recorder struct {
	mu    sync.Mutex
	modes []string
}

func (r *recorder) MenuRendered(mode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modes = append(r.modes, mode)
}

func newRouter(t *testing.T, cfg site.Config, pages *pageRepo, rec *recorder) http.Handler {
	t.Helper()

	translations, err := locales.New("en")
	require.NoError(t, err)

	h, err := site.NewHandlers(cfg, menu.DefaultConfig(), pages, projectList{
		{ID: 1, Title: "Gallery", Description: "Photos & more", Link: "https://example.com", LinkText: "See it"},
		{ID: 2, Title: "Blog"},
	}, translations, site.WithRecorder(rec))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.Locale(translations, locales.Namespace))
	site.SetupRoutes(r, h)
	return r
}

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestPageMarksSelection(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	h := newRouter(t, site.Config{SiteName: "Acme"}, newPageRepo(), rec)
	status, body := get(t, h, "/services/consulting")

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<p>Advice.</p>")
	assert.Contains(t, body, "<title>Consulting | Acme</title>")
	assert.Contains(t, body,
		`<ul id="dropdown00" class="dropdown-content"><li class="selected first last"><a href="/services/consulting">Consulting</a></li></ul>`)
	assert.Contains(t, body,
		`<ul id="dropdown01" class="dropdown-content"><li class="selected first last"><a href="/services/consulting">Consulting</a></li></ul>`)
	assert.Contains(t, body,
		`<li><a class="dropdown-button" href="/services" data-activates="dropdown00">Services</a></li>`)
	assert.Contains(t, body,
		`<li><a class="dropdown-button" href="/services" data-activates="dropdown01">Services</a></li>`)
	assert.Contains(t, body, `<li class="first"><a href="/">Home</a></li>`)
	assert.Equal(t, []string{site.ModeDropdown}, rec.modes)
}

func TestPageWithLocalePrefix(t *testing.T) {
	t.Parallel()

	h := newRouter(t, site.Config{}, newPageRepo(), &recorder{})
	status, body := get(t, h, "/de/services/consulting")

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `<html lang="de">`)
	assert.Contains(t, body, `<li class="selected first last"><a href="/de/services/consulting">Consulting</a></li>`)
	assert.Contains(t, body, `href="/de/services" data-activates="dropdown00"`)
	assert.Contains(t, body, `<a href="/de/">Home</a>`)

	status, body = get(t, h, "/de")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<p>Welcome.</p>")
}

func TestHomePage(t *testing.T) {
	t.Parallel()

	h := newRouter(t, site.Config{}, newPageRepo(), &recorder{})
	status, body := get(t, h, "/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<p>Welcome.</p>")
	assert.Contains(t, body, `<li class="selected first"><a href="/">Home</a></li>`)
}

func TestProjectsPage(t *testing.T) {
	t.Parallel()

	cfg := site.Config{Social: []markup.SocialLink{{Icon: "fa-github", URL: "https://github.com/acme"}}}
	h := newRouter(t, cfg, newPageRepo(), &recorder{})

	for _, path := range []string{"/projects", "/de/projects"} {
		status, body := get(t, h, path)
		require.Equal(t, http.StatusOK, status, path)
		text := html.UnescapeString(body)
		assert.Contains(t, text, "Photos & more")
		assert.Contains(t, body, `<a class="btn waves-effect" href="https://example.com">See it</a>`)
		assert.Contains(t, body, "<p>Selected work.</p>")
		assert.Contains(t, body, `<i class="social-icon fa fa-github"></i>`)
		assert.Contains(t, body, `class="selected last"`)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	h := newRouter(t, site.Config{}, newPageRepo(), &recorder{})
	status, body := get(t, h, "/nowhere")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, html.UnescapeString(body), "The page you were looking for doesn't exist.")
	assert.Contains(t, body, `data-activates="dropdown00"`)
}

func TestMenuFailureStillRendersPage(t *testing.T) {
	t.Parallel()

	pages := newPageRepo()
	pages.listErr = errors.New("database is down")
	h := newRouter(t, site.Config{}, pages, &recorder{})

	status, body := get(t, h, "/services")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<p>What we do.</p>")
	assert.NotContains(t, body, "dropdown-content")
}

func TestRegularMenuMode(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	h := newRouter(t, site.Config{MenuMode: site.ModeRegular}, newPageRepo(), rec)
	_, body := get(t, h, "/services/consulting")

	assert.Contains(t, body,
		`<ul class="right hide-on-med-and-down"><li class="first"><a href="/">Home</a></li><li class="active"><a href="/services">Services</a><ul><li class="selected first last"><a href="/services/consulting">Consulting</a></li></ul></li>`)
	assert.Contains(t, body, `<ul id="nav-mobile" class="side-nav">`)
	assert.NotContains(t, body, "dropdown-content")
	assert.Equal(t, []string{site.ModeRegular}, rec.modes)
}
