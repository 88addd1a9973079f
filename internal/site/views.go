package site

import (
	"embed"
	"html/template"

	"github.com/dmitrymomot/cmsnav/core/i18n"
	"github.com/dmitrymomot/cmsnav/internal/project"
)

//go:embed templates/*.html
var templatesFS embed.FS

type views struct {
	page     *template.Template
	projects *template.Template
	notFound *template.Template
}

func parseViews() (views, error) {
	parse := func(name string) (*template.Template, error) {
		return template.New(name).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
	}
	var (
		v   views
		err error
	)
	if v.page, err = parse("page"); err != nil {
		return views{}, err
	}
	if v.projects, err = parse("projects"); err != nil {
		return views{}, err
	}
	if v.notFound, err = parse("not_found"); err != nil {
		return views{}, err
	}
	return v, nil
}

type layoutView struct {
	T        func(key string, placeholders ...i18n.M) string
	Locale   string
	SiteName string
	Home     string
	Title    string
	Menu     template.HTML
	Social   template.HTML
}

type pageView struct {
	layoutView
	Body template.HTML
}

type projectsView struct {
	layoutView
	Intro    template.HTML
	Projects []project.Project
}
