package page

import (
	"errors"
	"strconv"

	"github.com/dmitrymomot/cmsnav/core/menu"
	"github.com/dmitrymomot/cmsnav/pkg/slug"
)

var ErrNotFound = errors.New("page not found")

// Page is a row of refinery_pages.
type Page struct {
	ID         int64  `json:"id"`
	ParentID   *int64 `json:"parent_id,omitempty"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	LinkURL    string `json:"link_url,omitempty"`
	MenuMatch  string `json:"menu_match,omitempty"`
	Position   int    `json:"position"`
	ShowInMenu bool   `json:"show_in_menu"`
	Body       string `json:"body,omitempty"`
}

// Segment is the path segment of the page, derived from the title when no
// slug is stored.
func (p Page) Segment() string {
	if s := slug.Make(p.Slug); s != "" {
		return s
	}
	return slug.Make(p.Title)
}

// BuildMenu links pages into a menu tree. Pages must be ordered so that
// siblings appear in menu order; pages whose parent is absent are dropped
// together with their subtree. Pages with a link url get an opaque url,
// the others a descriptor made of the slug chain.
func BuildMenu(pages []Page) []*menu.Item {
	byID := make(map[int64]*menu.Item, len(pages))
	parents := make(map[int64]int64, len(pages))
	for _, p := range pages {
		byID[p.ID] = &menu.Item{
			Title:      p.Title,
			OriginalID: strconv.FormatInt(p.ID, 10),
			MenuMatch:  p.MenuMatch,
		}
		if p.ParentID != nil {
			parents[p.ID] = *p.ParentID
		}
	}

	var roots []*menu.Item
	for _, p := range pages {
		item := byID[p.ID]
		if p.ParentID == nil {
			roots = append(roots, item)
			continue
		}
		if parent, ok := byID[*p.ParentID]; ok {
			parent.Children = append(parent.Children, item)
		}
	}

	segments := make(map[int64]string, len(pages))
	for _, p := range pages {
		segments[p.ID] = p.Segment()
	}
	for _, p := range pages {
		item := byID[p.ID]
		if p.LinkURL != "" {
			item.URL = menu.URL{Href: p.LinkURL}
			continue
		}
		item.URL = menu.URL{Path: chain(p.ID, parents, segments)}
	}

	return menu.Link(roots)
}

// chain returns the slug segments from the root down to id.
func chain(id int64, parents map[int64]int64, segments map[int64]string) []string {
	var path []string
	seen := make(map[int64]bool)
	for cur, ok := id, true; ok && !seen[cur]; cur, ok = parents[cur] {
		seen[cur] = true
		path = append([]string{segments[cur]}, path...)
	}
	return path
}
