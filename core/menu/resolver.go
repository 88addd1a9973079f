package menu

// URLResolver maps an item's url to the final href written into the markup.
type URLResolver interface {
	Resolve(u URL) string
}

// ResolverFunc adapts a function to URLResolver.
type ResolverFunc func(u URL) string

// Resolve implements URLResolver.
func (f ResolverFunc) Resolve(u URL) string {
	return f(u)
}

// DefaultResolver returns Href as given, or the joined descriptor path.
// A descriptor without path segments resolves to "#".
var DefaultResolver URLResolver = ResolverFunc(func(u URL) string {
	if s := u.String(); s != "" {
		return s
	}
	return "#"
})
