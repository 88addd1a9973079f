package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrymomot/cmsnav/core/i18n"
)

type (
	localeContextKey     struct{}
	translatorContextKey struct{}
)

// LocaleConfig configures locale detection.
type LocaleConfig struct {
	Skip func(r *http.Request) bool
	// I18n is required.
	I18n *i18n.I18n
	// Namespace of the translator stored in the context (required).
	Namespace string
	// IgnorePathPrefix disables the "/<locale>/" path prefix lookup.
	IgnorePathPrefix bool
}

// Locale detects the request locale and stores it with a translator.
func Locale(translations *i18n.I18n, namespace string) func(http.Handler) http.Handler {
	return LocaleWithConfig(LocaleConfig{I18n: translations, Namespace: namespace})
}

// LocaleWithConfig detects the locale from the first path segment when it
// names a supported language, then from Accept-Language, then falls back to
// the default language. The path itself is left untouched.
func LocaleWithConfig(cfg LocaleConfig) func(http.Handler) http.Handler {
	if cfg.I18n == nil {
		panic("locale middleware: i18n instance is required")
	}
	if cfg.Namespace == "" {
		panic("locale middleware: namespace is required")
	}

	detect := func(r *http.Request) string {
		if !cfg.IgnorePathPrefix {
			if seg := firstSegment(r.URL.Path); cfg.I18n.Supports(seg) {
				return seg
			}
		}
		if lang := i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language"), cfg.I18n.Languages()); lang != "" {
			return lang
		}
		return cfg.I18n.DefaultLanguage()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			locale := detect(r)
			ctx := context.WithValue(r.Context(), localeContextKey{}, locale)
			ctx = context.WithValue(ctx, translatorContextKey{}, i18n.NewTranslator(cfg.I18n, locale, cfg.Namespace))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLocale returns the locale stored by Locale, or "".
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}

// GetTranslator returns the translator stored by Locale.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	t, ok := ctx.Value(translatorContextKey{}).(*i18n.Translator)
	return t, ok
}

// WithLocale stores a locale in ctx. Handlers and tests use it when the
// middleware does not run.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
