package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type options struct {
	maxLength int
	separator string
	lowercase bool
}

// Option configures Make.
type Option func(*options)

// MaxLength limits the slug to n runes, cutting at a separator when possible.
func MaxLength(n int) Option {
	return func(o *options) { o.maxLength = n }
}

func Separator(sep string) Option {
	return func(o *options) { o.separator = sep }
}

func Lowercase(enabled bool) Option {
	return func(o *options) { o.lowercase = enabled }
}

// Letters that do not decompose into a base letter plus marks.
var replacer = strings.NewReplacer(
	"ß", "ss", "Æ", "AE", "æ", "ae", "Ø", "O", "ø", "o",
	"Đ", "D", "đ", "d", "Ł", "L", "ł", "l", "Œ", "OE", "œ", "oe",
)

// Make builds a slug from s. It returns an empty string when s holds no
// letters or digits.
func Make(s string, opts ...Option) string {
	o := options{separator: "-", lowercase: true}
	for _, opt := range opts {
		opt(&o)
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, replacer.Replace(s))
	if err != nil {
		folded = s
	}
	if o.lowercase {
		folded = strings.ToLower(folded)
	}

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := strings.Join(words, o.separator)

	if o.maxLength > 0 {
		out = truncate(out, o.maxLength, o.separator)
	}
	return out
}

func truncate(s string, limit int, sep string) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	cut := string(r[:limit])
	if sep != "" && !strings.HasPrefix(string(r[limit:]), sep) {
		if i := strings.LastIndex(cut, sep); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimSuffix(cut, sep)
}
