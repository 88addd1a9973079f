package project

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("project not found")
	ErrDuplicateTitle = errors.New("project title has already been taken")
)

// Project is a row of refinery_projects.
type Project struct {
	ID          int64
	Title       string
	Link        string
	LinkText    string
	Description string
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Params is the set of fields a client may change. Form names follow the
// nested project[...] convention of the admin forms.
type Params struct {
	Title       string `form:"project[title]" sanitize:"trim;single_line" validate:"required;max:255"`
	Link        string `form:"project[link]" sanitize:"trim;url" validate:"max:2048;url"`
	LinkText    string `form:"project[link_text]" sanitize:"trim;single_line" validate:"max:255"`
	Description string `form:"project[description]" sanitize:"trim;no_control" validate:"max:65535"`
}

// ParamsOf returns the editable fields of p, used to prefill edit forms.
func ParamsOf(p Project) Params {
	return Params{
		Title:       p.Title,
		Link:        p.Link,
		LinkText:    p.LinkText,
		Description: p.Description,
	}
}
