package admin

import (
	"embed"
	"html/template"

	"github.com/dmitrymomot/cmsnav/core/i18n"
	"github.com/dmitrymomot/cmsnav/internal/project"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"title": func(s string) i18n.M { return i18n.M{"title": s} },
}

type views struct {
	index *template.Template
	form  *template.Template
}

func parseViews() (views, error) {
	index, err := template.New("index").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/index.html")
	if err != nil {
		return views{}, err
	}
	form, err := template.New("form").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/form.html")
	if err != nil {
		return views{}, err
	}
	return views{index: index, form: form}, nil
}

type translateFunc func(key string, placeholders ...i18n.M) string

type layoutView struct {
	T      translateFunc
	Locale string
	Base   string
	Flash  []string
}

type indexView struct {
	layoutView
	Projects []project.Project
}

type formView struct {
	layoutView
	Heading string
	Action  string
	Params  project.Params
	Errors  []string
}
