package page_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmsnav/core/menu"
	"github.com/dmitrymomot/cmsnav/internal/page"
)

func ptr(v int64) *int64 { return &v }

func samplePages() []page.Page {
	return []page.Page{
		{ID: 1, Title: "Home", Slug: "home", LinkURL: "/"},
		{ID: 2, Title: "Services", Slug: "services", MenuMatch: "^/services"},
		{ID: 5, Title: "Projects", Slug: "projects", LinkURL: "/projects"},
		{ID: 3, ParentID: ptr(2), Title: "Consulting", Slug: "consulting"},
		{ID: 4, ParentID: ptr(3), Title: "Über Team"},
		{ID: 9, ParentID: ptr(42), Title: "Orphan", Slug: "orphan"},
	}
}

func TestBuildMenu(t *testing.T) {
	t.Parallel()

	roots := page.BuildMenu(samplePages())
	require.Len(t, roots, 3)

	home, services, projects := roots[0], roots[1], roots[2]
	assert.Equal(t, menu.URL{Href: "/"}, home.URL)
	assert.Equal(t, "1", home.OriginalID)
	assert.Equal(t, "/projects", projects.URL.String())
	assert.Equal(t, "^/services", services.MenuMatch)

	require.Len(t, services.Children, 1)
	consulting := services.Children[0]
	assert.Equal(t, "/services/consulting", consulting.URL.String())
	assert.Equal(t, 1, consulting.Depth)

	require.Len(t, consulting.Children, 1)
	team := consulting.Children[0]
	assert.Equal(t, []string{"services", "consulting", "uber-team"}, team.URL.Path)
	assert.Equal(t, 2, team.Depth)

	assert.Len(t, home.ShownSiblings, 2)
	assert.Empty(t, consulting.ShownSiblings)
}

func TestBuildMenuEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, page.BuildMenu(nil))
}

func TestBuildMenuRendersSelection(t *testing.T) {
	t.Parallel()

	r := menu.New(menu.DefaultConfig())
	roots := page.BuildMenu(samplePages())
	rc := menu.RenderContext{Path: "/en/services/consulting", Locale: "en"}

	assert.True(t, r.Active(roots[1], rc))
	assert.True(t, r.Selected(roots[1], rc))
	assert.True(t, r.Selected(roots[1].Children[0], rc))
	assert.False(t, r.Selected(roots[0], rc))
}

func TestSegment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "about-us", page.Page{Slug: "About Us"}.Segment())
	assert.Equal(t, "cafe", page.Page{Title: "Café"}.Segment())
}
