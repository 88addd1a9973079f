package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmsnav/core/sanitizer"
)

func TestSanitizeStruct(t *testing.T) {
	t.Parallel()

	type inner struct {
		Name string `sanitize:"trim;lower"`
	}
	type params struct {
		Title   string  `sanitize:"single_line"`
		Body    string  `sanitize:"trim;no_control"`
		Link    string  `sanitize:"url"`
		Note    *string `sanitize:"trim"`
		Raw     string
		Skipped string `sanitize:"-"`
		Inner   inner
		Unknown string `sanitize:"shout"`
	}

	note := "  note  "
	p := params{
		Title:   "  Gallery\r\n  of   things ",
		Body:    " line one\nline\x00 two ",
		Link:    " example.com/x ",
		Note:    &note,
		Raw:     "  raw  ",
		Skipped: "  skipped ",
		Inner:   inner{Name: "  MIXED "},
		Unknown: " same ",
	}
	require.NoError(t, sanitizer.SanitizeStruct(&p))

	assert.Equal(t, "Gallery of things", p.Title)
	assert.Equal(t, "line one\nline two", p.Body)
	assert.Equal(t, "https://example.com/x", p.Link)
	assert.Equal(t, "note", *p.Note)
	assert.Equal(t, "  raw  ", p.Raw)
	assert.Equal(t, "  skipped ", p.Skipped)
	assert.Equal(t, "mixed", p.Inner.Name)
	assert.Equal(t, " same ", p.Unknown)
}

func TestSanitizeStructRejectsNonPointers(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, sanitizer.SanitizeStruct(struct{}{}), sanitizer.ErrNotStructPointer)
	var nilPtr *struct{}
	assert.ErrorIs(t, sanitizer.SanitizeStruct(nilPtr), sanitizer.ErrNotStructPointer)
}

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", sanitizer.NormalizeURL("  "))
	assert.Equal(t, "/projects", sanitizer.NormalizeURL("/projects"))
	assert.Equal(t, "http://a.b", sanitizer.NormalizeURL("http://a.b"))
	assert.Equal(t, "mailto:x@y.z", sanitizer.NormalizeURL("mailto:x@y.z"))
	assert.Equal(t, "https://a.b", sanitizer.NormalizeURL("a.b"))
}

func TestRegisterSanitizer(t *testing.T) {
	sanitizer.RegisterSanitizer("shout_test", strings.ToUpper)
	p := struct {
		V string `sanitize:"shout_test"`
	}{V: "hi"}
	require.NoError(t, sanitizer.SanitizeStruct(&p))
	assert.Equal(t, "HI", p.V)
}
