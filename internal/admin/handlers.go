package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/dmitrymomot/cmsnav/core/binder"
	"github.com/dmitrymomot/cmsnav/core/handler"
	"github.com/dmitrymomot/cmsnav/core/i18n"
	"github.com/dmitrymomot/cmsnav/core/logger"
	"github.com/dmitrymomot/cmsnav/core/response"
	"github.com/dmitrymomot/cmsnav/core/validator"
	"github.com/dmitrymomot/cmsnav/internal/locales"
	"github.com/dmitrymomot/cmsnav/internal/project"
	"github.com/dmitrymomot/cmsnav/middleware"
)

// ProjectService is the part of project.Service the screens use.
type ProjectService interface {
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id int64) (project.Project, error)
	Create(ctx context.Context, params project.Params) (project.Project, error)
	Update(ctx context.Context, id int64, params project.Params) (project.Project, error)
	Delete(ctx context.Context, id int64) (project.Project, error)
	Reorder(ctx context.Context, ids []int64) error
}

// Recorder receives admin change events, usually *metrics.Metrics.
type Recorder interface {
	AdminChanged(resource, action string)
}

type nopRecorder struct{}

func (nopRecorder) AdminChanged(string, string) {}

// Handlers provides the project screens.
type Handlers struct {
	projects ProjectService
	sessions sessions.Store
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

// NewHandlers parses the embedded templates and returns the handlers.
func NewHandlers(projects ProjectService, store sessions.Store, translations *i18n.I18n, opts ...Option) (*Handlers, error) {
	v, err := parseViews()
	if err != nil {
		return nil, err
	}
	h := &Handlers{
		projects: projects,
		sessions: store,
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

// Index lists the projects and shows pending flash messages.
func (h *Handlers) Index(r *http.Request) handler.Response {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		return response.Error(err)
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		flashes, err := h.popFlashes(w, r)
		if err != nil {
			return err
		}
		view := indexView{layoutView: h.layout(r, flashes), Projects: projects}
		return response.Template(h.views.index, "layout", view)(w, r)
	}
}

func (h *Handlers) New(r *http.Request) handler.Response {
	t := h.translator(r)
	return h.form(formView{
		Heading: t("admin.projects.new_heading"),
		Action:  BasePath,
	}, http.StatusOK)
}

func (h *Handlers) Create(r *http.Request) handler.Response {
	var params project.Params
	if err := binder.Form()(r, &params); err != nil {
		return response.Error(response.ErrBadRequest.WithError(err))
	}

	p, err := h.projects.Create(r.Context(), params)
	if project.IsValidationError(err) {
		return h.form(formView{
			Heading: h.translator(r)("admin.projects.new_heading"),
			Action:  BasePath,
			Params:  params,
			Errors:  h.errorMessages(r, err),
		}, http.StatusUnprocessableEntity)
	}
	if err != nil {
		return response.Error(err)
	}

	h.changed(r, "create", p)
	return h.withFlash(h.translator(r)("admin.created", i18n.M{"title": p.Title}), response.RedirectSeeOther(BasePath))
}

func (h *Handlers) Edit(r *http.Request) handler.Response {
	id, err := projectID(r)
	if err != nil {
		return response.NotFound()
	}
	p, err := h.projects.Get(r.Context(), id)
	if err != nil {
		return h.lookupError(err)
	}
	return h.form(formView{
		Heading: h.translator(r)("admin.projects.edit_heading", i18n.M{"title": p.Title}),
		Action:  memberPath(p.ID),
		Params:  project.ParamsOf(p),
	}, http.StatusOK)
}

func (h *Handlers) Update(r *http.Request) handler.Response {
	id, err := projectID(r)
	if err != nil {
		return response.NotFound()
	}
	current, err := h.projects.Get(r.Context(), id)
	if err != nil {
		return h.lookupError(err)
	}

	// Fields missing from the submission keep their stored values.
	params := project.ParamsOf(current)
	if err := binder.Form()(r, &params); err != nil {
		return response.Error(response.ErrBadRequest.WithError(err))
	}

	p, err := h.projects.Update(r.Context(), id, params)
	if project.IsValidationError(err) {
		return h.form(formView{
			Heading: h.translator(r)("admin.projects.edit_heading", i18n.M{"title": current.Title}),
			Action:  memberPath(id),
			Params:  params,
			Errors:  h.errorMessages(r, err),
		}, http.StatusUnprocessableEntity)
	}
	if err != nil {
		return h.lookupError(err)
	}

	h.changed(r, "update", p)
	return h.withFlash(h.translator(r)("admin.updated", i18n.M{"title": p.Title}), response.RedirectSeeOther(BasePath))
}

func (h *Handlers) Destroy(r *http.Request) handler.Response {
	id, err := projectID(r)
	if err != nil {
		return response.NotFound()
	}
	p, err := h.projects.Delete(r.Context(), id)
	if err != nil {
		return h.lookupError(err)
	}

	h.changed(r, "delete", p)
	return h.withFlash(h.translator(r)("admin.removed", i18n.M{"title": p.Title}), response.RedirectSeeOther(BasePath))
}

// UpdatePositions stores the order submitted as repeated ids[] values.
func (h *Handlers) UpdatePositions(r *http.Request) handler.Response {
	var form struct {
		IDs []int64 `form:"ids[]"`
	}
	if err := binder.Form()(r, &form); err != nil {
		return response.Error(response.ErrBadRequest.WithError(err))
	}
	if err := h.projects.Reorder(r.Context(), form.IDs); err != nil {
		return h.lookupError(err)
	}

	h.recorder.AdminChanged("project", "reorder")
	return h.withFlash(h.translator(r)("admin.reordered"), response.RedirectSeeOther(BasePath))
}

func (h *Handlers) form(view formView, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		view.layoutView = h.layout(r, nil)
		return response.TemplateWithStatus(h.views.form, "layout", view, status)(w, r)
	}
}

func (h *Handlers) layout(r *http.Request, flashes []string) layoutView {
	return layoutView{
		T:      h.translator(r),
		Locale: h.locale(r),
		Base:   BasePath,
		Flash:  flashes,
	}
}

func (h *Handlers) locale(r *http.Request) string {
	if l := middleware.GetLocale(r.Context()); l != "" {
		return l
	}
	return h.i18n.DefaultLanguage()
}

func (h *Handlers) translator(r *http.Request) translateFunc {
	lang := h.locale(r)
	return func(key string, placeholders ...i18n.M) string {
		return h.i18n.T(lang, locales.Namespace, key, placeholders...)
	}
}

// errorMessages turns field errors into sentences such as "Title can't be blank".
func (h *Handlers) errorMessages(r *http.Request, err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	t := h.translator(r)
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		vals := i18n.M{}
		for k, v := range e.TranslationValues {
			vals[k] = v
		}
		vals["field"] = t("fields." + e.Field)
		msgs = append(msgs, t(e.TranslationKey, vals))
	}
	return msgs
}

func (h *Handlers) lookupError(err error) handler.Response {
	if project.IsNotFound(err) {
		return response.NotFound()
	}
	return response.Error(err)
}

func (h *Handlers) changed(r *http.Request, action string, p project.Project) {
	h.recorder.AdminChanged("project", action)
	h.logger.InfoContext(r.Context(), "admin change",
		logger.Component("admin"),
		logger.Action(action),
		logger.ProjectID(p.ID),
	)
}

func projectID(r *http.Request) (int64, error) {
	var p struct {
		ID int64 `path:"id"`
	}
	if err := binder.Path(chi.URLParam)(r, &p); err != nil {
		return 0, err
	}
	if p.ID <= 0 {
		return 0, project.ErrNotFound
	}
	return p.ID, nil
}

func memberPath(id int64) string {
	return BasePath + "/" + strconv.FormatInt(id, 10)
}
