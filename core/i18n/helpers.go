package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the best of the available languages for an
// Accept-Language header. It returns the first available language when
// nothing matches and "" when none are available.
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, 0, len(available))
	for _, a := range available {
		tag, err := language.Parse(a)
		if err != nil {
			tag = language.Und
		}
		supported = append(supported, tag)
	}

	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No || idx < 0 || idx >= len(available) {
		return available[0]
	}
	return available[idx]
}

// ReplacePlaceholders substitutes %{name} markers with values.
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 {
		return template
	}
	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "%{"+key+"}", fmt.Sprintf("%v", value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
