// Package i18n holds the site's translations.
//
// An I18n is built once from Go maps and is immutable afterwards. Keys are
// looked up per language and namespace, falling back to the default language
// and finally to the key itself:
//
//	t, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithLanguages("en", "de"),
//		i18n.WithTranslations("en", "admin", map[string]any{
//			"flash": map[string]any{"created": "'%{title}' was successfully added."},
//		}),
//	)
//	t.T("en", "admin", "flash.created", i18n.M{"title": "Gallery"})
//
// Placeholders use the %{name} form. ParseAcceptLanguage negotiates a request
// language against the configured ones.
package i18n
