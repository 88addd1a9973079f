package sanitizer

import (
	"errors"
	"reflect"
	"strings"
	"sync"
)

// ErrNotStructPointer is returned for anything but a non-nil struct pointer.
var ErrNotStructPointer = errors.New("sanitizer: must pass a pointer to struct")

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"lower":       ToLower,
		"single_line": SingleLine,
		"no_spaces":   RemoveExtraWhitespace,
		"no_control":  RemoveControlChars,
		"url":         NormalizeURL,
	}
)

// RegisterSanitizer adds or replaces a named rule.
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct applies `sanitize` tags to string fields of v, including
// string pointers and nested structs.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	registryMu.RLock()
	defer registryMu.RUnlock()
	sanitizeStruct(rv.Elem())
	return nil
}

func sanitizeStruct(rv reflect.Value) {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}
		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		switch {
		case field.Kind() == reflect.Struct && tag == "":
			sanitizeStruct(field)
		case field.Kind() == reflect.String && tag != "":
			field.SetString(apply(field.String(), tag))
		case field.Kind() == reflect.Pointer && !field.IsNil() && field.Elem().Kind() == reflect.String && tag != "":
			field.Elem().SetString(apply(field.Elem().String(), tag))
		}
	}
}

func apply(s, tag string) string {
	for name := range strings.SplitSeq(tag, ";") {
		if fn, ok := registry[strings.TrimSpace(name)]; ok {
			s = fn(s)
		}
	}
	return s
}
