package site

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/cmsnav/core/handler"
	"github.com/dmitrymomot/cmsnav/core/i18n"
	"github.com/dmitrymomot/cmsnav/core/logger"
	"github.com/dmitrymomot/cmsnav/core/markup"
	"github.com/dmitrymomot/cmsnav/core/menu"
	"github.com/dmitrymomot/cmsnav/core/response"
	"github.com/dmitrymomot/cmsnav/internal/locales"
	"github.com/dmitrymomot/cmsnav/internal/page"
	"github.com/dmitrymomot/cmsnav/internal/project"
	"github.com/dmitrymomot/cmsnav/middleware"
)

// ProjectsPath is the public projects listing.
const ProjectsPath = "/projects"

// Menu modes.
const (
	ModeDropdown = "dropdown"
	ModeRegular  = "regular"
)

type PageRepository interface {
	ListMenu(ctx context.Context) ([]page.Page, error)
	FindByPath(ctx context.Context, path string) (page.Page, error)
}

type ProjectLister interface {
	List(ctx context.Context) ([]project.Project, error)
}

// Recorder receives menu render events, usually *metrics.Metrics.
type Recorder interface {
	MenuRendered(mode string)
}

type nopRecorder struct{}

func (nopRecorder) MenuRendered(string) {}

// Config holds presentation settings of the public site.
type Config struct {
	SiteName string `env:"SITE_NAME" envDefault:"cmsnav"`
	MenuMode string `env:"MENU_MODE" envDefault:"dropdown"`
	Social   []markup.SocialLink
}

// Handlers serves the public pages.
type Handlers struct {
	cfg      Config
	menuCfg  menu.Config
	pages    PageRepository
	projects ProjectLister
	i18n     *i18n.I18n
	views    views
	recorder Recorder
	logger   *slog.Logger
}

type Option func(*Handlers)

func WithLogger(log *slog.Logger) Option {
	return func(h *Handlers) {
		if log != nil {
			h.logger = log
		}
	}
}

func WithRecorder(rec Recorder) Option {
	return func(h *Handlers) {
		if rec != nil {
			h.recorder = rec
		}
	}
}

func NewHandlers(cfg Config, menuCfg menu.Config, pages PageRepository, projects ProjectLister, translations *i18n.I18n, opts ...Option) (*Handlers, error) {
	v, err := parseViews()
	if err != nil {
		return nil, err
	}
	if cfg.MenuMode == "" {
		cfg.MenuMode = ModeDropdown
	}
	h := &Handlers{
		cfg:      cfg,
		menuCfg:  menuCfg,
		pages:    pages,
		projects: projects,
		i18n:     translations,
		views:    v,
		recorder: nopRecorder{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *Handlers) wrap(fn handler.Func) http.HandlerFunc {
	return handler.Wrap(fn, response.ErrorHandler(h.logger))
}

// Page renders the page addressed by the request path. Locale-prefixed
// paths resolve to the same pages as their unprefixed form.
func (h *Handlers) Page(r *http.Request) handler.Response {
	locale := h.locale(r)
	path := h.sitePath(r.URL.Path, locale)
	if path == ProjectsPath {
		return h.Projects(r)
	}

	p, err := h.pages.FindByPath(r.Context(), path)
	if errors.Is(err, page.ErrNotFound) {
		return h.NotFound(r)
	}
	if err != nil {
		return response.Error(err)
	}

	// Page bodies are authored HTML.
	return h.render(h.views.page, &pageView{
		layoutView: h.layout(locale, p.Title),
		Body:       template.HTML(p.Body),
	}, http.StatusOK)
}

// Projects lists the projects, introduced by the body of the projects page
// when there is one.
func (h *Handlers) Projects(r *http.Request) handler.Response {
	locale := h.locale(r)
	list, err := h.projects.List(r.Context())
	if err != nil {
		return response.Error(err)
	}

	title := h.i18n.T(locale, locales.Namespace, "site.projects")
	var intro template.HTML
	if p, err := h.pages.FindByPath(r.Context(), ProjectsPath); err == nil {
		title, intro = p.Title, template.HTML(p.Body)
	} else if !errors.Is(err, page.ErrNotFound) {
		h.logger.WarnContext(r.Context(), "projects page lookup failed", logger.Component("site"), logger.Error(err))
	}

	return h.render(h.views.projects, &projectsView{
		layoutView: h.layout(locale, title),
		Intro:      intro,
		Projects:   list,
	}, http.StatusOK)
}

func (h *Handlers) NotFound(r *http.Request) handler.Response {
	locale := h.locale(r)
	return h.render(h.views.notFound, &pageView{
		layoutView: h.layout(locale, "404"),
	}, http.StatusNotFound)
}

// render fills the menu and social fragments and executes the layout.
func (h *Handlers) render(tmpl *template.Template, view interface{ setFragments(nav, social template.HTML) }, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		ctx := r.Context()
		locale := h.locale(r)

		nav, err := templ.ToGoHTML(ctx, h.Menu(ctx, r.URL.EscapedPath(), locale))
		if err != nil {
			return err
		}
		social, err := templ.ToGoHTML(ctx, markup.SocialButtons(h.cfg.Social))
		if err != nil {
			return err
		}
		view.setFragments(nav, social)
		return response.TemplateWithStatus(tmpl, "layout", view, status)(w, r)
	}
}

// Menu builds the navigation for path. A failing page repository yields an
// empty menu rather than a failed page.
func (h *Handlers) Menu(ctx context.Context, path, locale string) templ.Component {
	pages, err := h.pages.ListMenu(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "menu pages unavailable", logger.Component("site"), logger.Error(err))
		return templ.NopComponent
	}

	r := menu.New(h.menuCfg,
		menu.WithResolver(localeResolver(locale, h.i18n.DefaultLanguage())),
		menu.WithLogger(h.logger),
	)
	rc := menu.RenderContext{Path: path, Locale: locale}
	items := page.BuildMenu(pages)

	h.recorder.MenuRendered(h.cfg.MenuMode)
	if h.cfg.MenuMode == ModeRegular {
		return r.Render(rc, items)
	}
	return r.RenderDropdown(rc, items)
}

func (h *Handlers) layout(locale, title string) layoutView {
	return layoutView{
		T: func(key string, placeholders ...i18n.M) string {
			return h.i18n.T(locale, locales.Namespace, key, placeholders...)
		},
		Locale:   locale,
		SiteName: h.cfg.SiteName,
		Home:     localeResolver(locale, h.i18n.DefaultLanguage()).Resolve(menu.URL{Href: "/"}),
		Title:    title,
	}
}

func (h *Handlers) locale(r *http.Request) string {
	if l := middleware.GetLocale(r.Context()); l != "" {
		return l
	}
	return h.i18n.DefaultLanguage()
}

// sitePath strips the locale prefix and trailing slashes.
func (h *Handlers) sitePath(path, locale string) string {
	if path == "/"+locale {
		return "/"
	}
	path = menu.StripLocale(path, locale)
	if trimmed := strings.TrimRight(path, "/"); trimmed != "" {
		return trimmed
	}
	return "/"
}

// localeResolver prefixes site-relative hrefs with the locale unless it is
// the default one.
func localeResolver(locale, defaultLocale string) menu.URLResolver {
	return menu.ResolverFunc(func(u menu.URL) string {
		href := menu.DefaultResolver.Resolve(u)
		if locale == "" || locale == defaultLocale || !strings.HasPrefix(href, "/") || strings.HasPrefix(href, "//") {
			return href
		}
		if href == "/" {
			return "/" + locale + "/"
		}
		return "/" + locale + href
	})
}

func (v *pageView) setFragments(nav, social template.HTML) {
	v.Menu, v.Social = nav, social
}

func (v *projectsView) setFragments(nav, social template.HTML) {
	v.Menu, v.Social = nav, social
}
