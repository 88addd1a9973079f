package menu

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/cmsnav/core/logger"
)

// selector evaluates selected/active state for one render pass.
// Match expressions are compiled lazily and kept for the pass only.
type selector struct {
	path    string
	decoded string
	locale  string
	logger  *slog.Logger
	exprs   map[string]*regexp.Regexp
}

func newSelector(rc RenderContext, log *slog.Logger) *selector {
	path := StripLocale(rc.Path, rc.Locale)
	decoded, err := url.PathUnescape(path)
	if err != nil {
		decoded = path
	}
	return &selector{
		path:    path,
		decoded: decoded,
		locale:  rc.Locale,
		logger:  log,
		exprs:   make(map[string]*regexp.Regexp),
	}
}

// StripLocale removes a leading "/<locale>" segment from path when the path
// starts with "/<locale>/". An empty remainder becomes "/".
func StripLocale(path, locale string) string {
	rest, ok := trimLocale(path, locale)
	if !ok {
		return path
	}
	if rest == "" {
		return "/"
	}
	return rest
}

func trimLocale(path, locale string) (string, bool) {
	if locale == "" {
		return path, false
	}
	prefix := "/" + locale
	if !strings.HasPrefix(path, prefix+"/") {
		return path, false
	}
	return path[len(prefix):], true
}

// candidate returns the url an item is compared against.
func (s *selector) candidate(u URL) string {
	raw := u.String()
	if rest, ok := trimLocale(raw, s.locale); ok {
		return rest
	}
	return raw
}

func (s *selector) selected(item *Item) bool {
	if item == nil {
		return false
	}
	if item.MenuMatch != "" && s.matches(item.MenuMatch) {
		return true
	}

	if c := s.candidate(item.URL); c != "" && (c == s.path || c == s.decoded) {
		return true
	}

	return item.OriginalID != "" && s.path == "/"+item.OriginalID
}

// active walks every descendant; the render depth limit does not apply here.
func (s *selector) active(item *Item) bool {
	if !item.HasChildren() {
		return false
	}
	for _, child := range item.Children {
		if s.selected(child) || s.active(child) {
			return true
		}
	}
	return false
}

func (s *selector) matches(expr string) bool {
	re, seen := s.exprs[expr]
	if !seen {
		compiled, err := regexp.Compile(expr)
		if err != nil {
			s.logger.Debug("invalid menu match expression",
				logger.Component("menu"),
				slog.String("menu_match", expr),
				logger.Error(err),
			)
		}
		re = compiled
		s.exprs[expr] = re
	}
	return re != nil && re.MatchString(s.path)
}
