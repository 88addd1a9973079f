package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

// RemoveExtraWhitespace collapses runs of whitespace into one space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters except newlines and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine joins lines with spaces and collapses whitespace.
func SingleLine(s string) string {
	return RemoveExtraWhitespace(RemoveControlChars(strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)))
}

// NormalizeURL trims the value and prefixes https:// when a bare host is given.
// Blank input stays blank.
func NormalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "/") || strings.HasPrefix(s, "#") || strings.Contains(s, "://") {
		return s
	}
	if strings.HasPrefix(s, "mailto:") {
		return s
	}
	return "https://" + s
}
