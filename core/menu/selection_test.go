package menu_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmsnav/core/menu"
)

func TestSelected(t *testing.T) {
	t.Parallel()

	r := menu.New(menu.DefaultConfig())

	tests := []struct {
		name string
		item *menu.Item
		rc   menu.RenderContext
		want bool
	}{
		{
			name: "exact href",
			item: &menu.Item{URL: menu.URL{Href: "/about"}},
			rc:   menu.RenderContext{Path: "/about"},
			want: true,
		},
		{
			name: "locale prefix is ignored on the request path",
			item: &menu.Item{URL: menu.URL{Href: "/about"}},
			rc:   menu.RenderContext{Path: "/en/about", Locale: "en"},
			want: true,
		},
		{
			name: "locale prefix is ignored on the item url",
			item: &menu.Item{URL: menu.URL{Href: "/en/about"}},
			rc:   menu.RenderContext{Path: "/about", Locale: "en"},
			want: true,
		},
		{
			name: "other locale prefix is kept",
			item: &menu.Item{URL: menu.URL{Href: "/about"}},
			rc:   menu.RenderContext{Path: "/de/about", Locale: "en"},
			want: false,
		},
		{
			name: "locale root becomes slash",
			item: &menu.Item{URL: menu.URL{Href: "/"}},
			rc:   menu.RenderContext{Path: "/en/", Locale: "en"},
			want: true,
		},
		{
			name: "descriptor path",
			item: &menu.Item{URL: menu.URL{Path: []string{"services", "consulting"}}},
			rc:   menu.RenderContext{Path: "/services/consulting"},
			want: true,
		},
		{
			name: "percent encoded request path",
			item: &menu.Item{URL: menu.URL{Href: "/über"}},
			rc:   menu.RenderContext{Path: "/%C3%BCber"},
			want: true,
		},
		{
			name: "menu match expression",
			item: &menu.Item{URL: menu.URL{Href: "/projects/index"}, MenuMatch: "^/projects"},
			rc:   menu.RenderContext{Path: "/en/projects/42", Locale: "en"},
			want: true,
		},
		{
			name: "menu match expression without a hit falls back to the url",
			item: &menu.Item{URL: menu.URL{Href: "/projects"}, MenuMatch: "^/portfolio"},
			rc:   menu.RenderContext{Path: "/projects"},
			want: true,
		},
		{
			name: "invalid menu match is never a match",
			item: &menu.Item{URL: menu.URL{Href: "/projects"}, MenuMatch: "("},
			rc:   menu.RenderContext{Path: "/other"},
			want: false,
		},
		{
			name: "original id path",
			item: &menu.Item{URL: menu.URL{Href: "/about-us"}, OriginalID: "7"},
			rc:   menu.RenderContext{Path: "/7"},
			want: true,
		},
		{
			name: "blank original id never matches",
			item: &menu.Item{URL: menu.URL{Href: "/about-us"}},
			rc:   menu.RenderContext{Path: "/"},
			want: false,
		},
		{
			name: "empty descriptor never matches",
			item: &menu.Item{},
			rc:   menu.RenderContext{Path: ""},
			want: false,
		},
		{
			name: "nil item",
			item: nil,
			rc:   menu.RenderContext{Path: "/"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.Selected(tt.item, tt.rc))
		})
	}
}

func TestActive(t *testing.T) {
	t.Parallel()

	r := menu.New(menu.DefaultConfig())

	t.Run("every ancestor of the selected item is active", func(t *testing.T) {
		roots := nested()
		home := roots[0]
		services := home.Children[1]
		consultingItem := services.Children[0]

		assert.True(t, r.Active(home, consulting))
		assert.True(t, r.Active(services, consulting))
		assert.False(t, r.Active(consultingItem, consulting))
		assert.True(t, r.Selected(consultingItem, consulting))
		assert.False(t, r.Selected(services, consulting))
	})

	t.Run("siblings of the selected branch are not active", func(t *testing.T) {
		roots := siblings()
		assert.False(t, r.Active(roots[0], consulting))
		assert.False(t, r.Active(roots[1], consulting))
		assert.True(t, r.Active(roots[2], consulting))
	})

	t.Run("depth limit does not hide a deep selection", func(t *testing.T) {
		cfg := menu.DefaultConfig()
		cfg.MaxDepth = 1
		limited := menu.New(cfg)

		deep := menu.Link([]*menu.Item{{
			Title: "A", URL: menu.URL{Href: "/a"},
			Children: []*menu.Item{{
				Title: "B", URL: menu.URL{Href: "/a/b"},
				Children: []*menu.Item{{
					Title: "C", URL: menu.URL{Href: "/a/b/c"},
				}},
			}},
		}})
		assert.True(t, limited.Active(deep[0], menu.RenderContext{Path: "/a/b/c"}))
	})

	t.Run("leaf is never active", func(t *testing.T) {
		leaf := &menu.Item{URL: menu.URL{Href: "/x"}}
		assert.False(t, r.Active(leaf, menu.RenderContext{Path: "/x"}))
	})
}

func TestInvalidMenuMatchIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := menu.New(menu.DefaultConfig(), menu.WithLogger(log))

	items := menu.Link([]*menu.Item{
		{Title: "Broken", URL: menu.URL{Href: "/broken"}, MenuMatch: "[a-"},
	})
	out := render(t, r.List(menu.RenderContext{Path: "/elsewhere"}, items, menu.Desktop))

	require.Contains(t, out, "Broken")
	assert.NotContains(t, out, "selected")
	assert.Contains(t, buf.String(), "invalid menu match expression")
	assert.Contains(t, buf.String(), "menu_match=[a-")
}

func TestStripLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, locale, want string
	}{
		{"/en/about", "en", "/about"},
		{"/en/", "en", "/"},
		{"/en", "en", "/en"},
		{"/english/about", "en", "/english/about"},
		{"/about", "", "/about"},
		{"/de/about", "en", "/de/about"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, menu.StripLocale(tt.path, tt.locale), tt.path)
	}
}
