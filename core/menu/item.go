package menu

import "strings"

// URL locates a menu item. Href holds an opaque url; Path holds the segments
// of a structured route descriptor and is used when Href is empty.
type URL struct {
	Href string   `json:"href,omitempty"`
	Path []string `json:"path,omitempty"`
}

// IsDescriptor reports whether the url is a structured descriptor rather than
// an opaque string.
func (u URL) IsDescriptor() bool {
	return u.Href == ""
}

// String returns the comparable form of the url: Href as given, or the
// descriptor path joined with "/" and prefixed with "/". A descriptor without
// path segments yields an empty string.
func (u URL) String() string {
	if !u.IsDescriptor() {
		return u.Href
	}
	segments := make([]string, 0, len(u.Path))
	for _, s := range u.Path {
		s = strings.Trim(s, "/")
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return ""
	}
	return "/" + strings.Join(segments, "/")
}

// Item is a node of the navigation tree.
type Item struct {
	Title      string
	URL        URL
	Children   []*Item
	Depth      int
	OriginalID string

	// MenuMatch is an optional regular expression. When the request path
	// matches it, the item is selected regardless of its URL.
	MenuMatch string

	// ShownSiblings are the other items visible at the same level, excluding
	// the item itself. Populated by Link.
	ShownSiblings []*Item
}

// HasChildren reports whether the item has at least one child.
func (i *Item) HasChildren() bool {
	return i != nil && len(i.Children) > 0
}

// Link fills the derived fields of a tree built by the caller: Depth of every
// node (roots are at depth 0) and ShownSiblings. It returns roots for chaining.
// Link is meant to run once while the tree is constructed; renderers never
// modify the tree.
func Link(roots []*Item) []*Item {
	link(roots, 0)
	return roots
}

func link(items []*Item, depth int) {
	for idx, item := range items {
		item.Depth = depth
		siblings := make([]*Item, 0, len(items)-1)
		siblings = append(siblings, items[:idx]...)
		siblings = append(siblings, items[idx+1:]...)
		item.ShownSiblings = siblings
		link(item.Children, depth+1)
	}
}
