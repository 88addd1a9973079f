package i18n

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// DefaultLang is used when no default language is configured.
const DefaultLang = "en"

var (
	ErrEmptyLanguage  = errors.New("language cannot be empty")
	ErrEmptyNamespace = errors.New("namespace cannot be empty")
)

// I18n stores flattened translations. It is immutable after New returns and
// safe for concurrent use.
type I18n struct {
	// key format: "lang:namespace:dotted.key"
	translations map[string]string
	defaultLang  string
	languages    []string
	onMissing    func(lang, namespace, key string)
}

// Option configures an I18n during construction.
type Option func(*I18n) error

// New creates an I18n from options.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	// The default language always leads the list.
	langs := []string{i.defaultLang}
	for _, l := range i.languages {
		if !slices.Contains(langs, l) {
			langs = append(langs, l)
		}
	}
	i.languages = langs
	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages sets the supported languages in preference order.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		for _, l := range langs {
			if l != "" {
				i.languages = append(i.languages, l)
			}
		}
		return nil
	}
}

// WithMissingKeyHandler registers a callback for keys found in no language.
func WithMissingKeyHandler(fn func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.onMissing = fn
		return nil
	}
}

// WithTranslations loads a possibly nested map for a language and namespace.
// The language is added to the supported list.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		for key, value := range flatten(translations, "") {
			i.translations[buildKey(lang, namespace, key)] = value
		}
		if !slices.Contains(i.languages, lang) {
			i.languages = append(i.languages, lang)
		}
		return nil
	}
}

// T returns the translation for key, trying lang and then the default
// language. Unknown keys are returned as is.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	if s, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return replace(s, placeholders)
	}
	if lang != i.defaultLang {
		if s, ok := i.translations[buildKey(i.defaultLang, namespace, key)]; ok {
			return replace(s, placeholders)
		}
	}
	if i.onMissing != nil {
		i.onMissing(lang, namespace, key)
	}
	return key
}

// Languages returns the supported languages, default first.
func (i *I18n) Languages() []string {
	return slices.Clone(i.languages)
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Supports reports whether lang is one of the configured languages.
func (i *I18n) Supports(lang string) bool {
	return lang != "" && slices.Contains(i.languages, lang)
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flatten(data map[string]any, prefix string) map[string]string {
	out := make(map[string]string)
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			maps.Copy(out, flatten(v, full))
		case M:
			maps.Copy(out, flatten(v, full))
		case map[string]string:
			for k, s := range v {
				out[full+"."+k] = s
			}
		default:
			out[full] = fmt.Sprintf("%v", v)
		}
	}
	return out
}

func replace(s string, placeholders []M) string {
	if len(placeholders) == 0 {
		return s
	}
	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(s, merged)
}
