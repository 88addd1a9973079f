package locales_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmsnav/core/i18n"
	"github.com/dmitrymomot/cmsnav/internal/locales"
)

func TestTranslations(t *testing.T) {
	t.Parallel()

	tr, err := locales.New("")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "de"}, tr.Languages())

	tests := []struct {
		lang, key string
		vals      i18n.M
		want      string
	}{
		{"en", "validation.required", i18n.M{"field": "Title"}, "Title can't be blank"},
		{"en", "admin.created", i18n.M{"title": "Gallery"}, "'Gallery' was successfully added."},
		{"en", "admin.projects.add", nil, "Add New Project"},
		{"de", "fields.Title", nil, "Titel"},
		{"de", "admin.removed", i18n.M{"title": "X"}, "'X' wurde erfolgreich entfernt."},
		{"fr", "admin.save", nil, "Save"},
		{"en", "missing.key", nil, "missing.key"},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			t.Parallel()
			if tt.vals == nil {
				assert.Equal(t, tt.want, tr.T(tt.lang, locales.Namespace, tt.key))
				return
			}
			assert.Equal(t, tt.want, tr.T(tt.lang, locales.Namespace, tt.key, tt.vals))
		})
	}
}

func TestGermanDefault(t *testing.T) {
	t.Parallel()

	tr, err := locales.New("de")
	require.NoError(t, err)
	assert.Equal(t, "de", tr.DefaultLanguage())
	assert.Equal(t, "Speichern", tr.T("it", locales.Namespace, "admin.save"))
}
