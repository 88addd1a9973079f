package validator

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// Rule is the outcome of a validator for one value.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidatorFunc builds a Rule for a field value and its tag parameters.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"url":      urlValidator,
	}
)

// RegisterValidator adds or replaces a named rule.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates v, which must be a pointer to a struct. It returns
// ValidationErrors when any rule fails.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	var errs ValidationErrors
	validateStruct(rv.Elem(), "", &errs)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStruct(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}
		sf := rt.Field(i)
		tag := sf.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		path := sf.Name
		if prefix != "" {
			path = prefix + "." + sf.Name
		}

		if field.Kind() == reflect.Struct && tag == "" {
			validateStruct(field, path, errs)
			continue
		}
		if tag == "" {
			continue
		}
		if field.Kind() == reflect.Pointer && !field.IsNil() {
			field = field.Elem()
		}
		validateField(path, field, tag, errs)
	}
}

// validateField applies the rules of a tag. An absent optional field (nil
// pointer) is only checked by required.
func validateField(path string, field reflect.Value, tag string, errs *ValidationErrors) {
	absent := field.Kind() == reflect.Pointer && field.IsNil()
	for raw := range strings.SplitSeq(tag, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, paramStr := raw, ""
		if i := strings.IndexAny(raw, ":="); i >= 0 {
			name, paramStr = raw[:i], raw[i+1:]
		}
		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			for p := range strings.SplitSeq(paramStr, ",") {
				params = append(params, strings.TrimSpace(p))
			}
		}

		name = strings.TrimSpace(name)
		if absent && name != "required" {
			continue
		}
		fn, ok := registry[name]
		if !ok {
			continue
		}
		if rule := fn(path, field, params); !rule.Check() {
			errs.Add(rule.Error)
		}
	}
}

func isBlank(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// size is the rune count for strings, the length for collections and the
// value for numbers.
func size(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.String:
		return float64(utf8.RuneCountInString(v.String())), true
	case reflect.Slice, reflect.Map, reflect.Array:
		return float64(v.Len()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func requiredValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool { return value.IsValid() && !isBlank(value) },
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func boundValidator(name string, cmp func(got, limit float64) bool) ValidatorFunc {
	return func(field string, value reflect.Value, params []string) Rule {
		var limit float64
		ok := len(params) == 1
		if ok {
			var err error
			limit, err = strconv.ParseFloat(params[0], 64)
			ok = err == nil
		}
		bound := ""
		if len(params) > 0 {
			bound = params[0]
		}
		return Rule{
			Check: func() bool {
				if !ok || !value.IsValid() {
					return false
				}
				// Optional strings are only bounded when present.
				if value.Kind() == reflect.String && value.Len() == 0 {
					return true
				}
				got, measurable := size(value)
				return measurable && cmp(got, limit)
			},
			Error: ValidationError{
				Field:             field,
				Message:           "field must satisfy " + name + " " + bound,
				TranslationKey:    "validation." + name,
				TranslationValues: map[string]any{"field": field, name: bound},
			},
		}
	}
}

var (
	minValidator = boundValidator("min", func(got, limit float64) bool { return got >= limit })
	maxValidator = boundValidator("max", func(got, limit float64) bool { return got <= limit })
)

// urlValidator accepts blank values, absolute http(s) urls and site-relative paths.
func urlValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			if value.Kind() != reflect.String {
				return false
			}
			s := strings.TrimSpace(value.String())
			if s == "" || (strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//")) {
				return true
			}
			u, err := url.Parse(s)
			return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		Error: ValidationError{
			Field:             field,
			Message:           "field must be a valid URL",
			TranslationKey:    "validation.url",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
