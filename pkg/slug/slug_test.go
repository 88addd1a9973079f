package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cmsnav/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		opts []slug.Option
		want string
	}{
		{"simple", "Hello, World!", nil, "hello-world"},
		{"diacritics", "Café & Restaurant", nil, "cafe-restaurant"},
		{"special letters", "Straße in München", nil, "strasse-in-munchen"},
		{"collapses separators", "  --Our   Projects--  ", nil, "our-projects"},
		{"keeps digits", "Top 10 lists", nil, "top-10-lists"},
		{"non latin", "Über uns", nil, "uber-uns"},
		{"empty", "!!!", nil, ""},
		{"separator", "Product Name", []slug.Option{slug.Separator("_")}, "product_name"},
		{"case", "Product Name", []slug.Option{slug.Lowercase(false)}, "Product-Name"},
		{"max length at word", "Very long title here", []slug.Option{slug.MaxLength(12)}, "very-long"},
		{"max length exact boundary", "Very long title", []slug.Option{slug.MaxLength(9)}, "very-long"},
		{"max length single word", "Supercalifragilistic", []slug.Option{slug.MaxLength(5)}, "super"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slug.Make(tt.in, tt.opts...))
		})
	}
}
