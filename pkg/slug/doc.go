// Package slug turns titles into URL path segments.
//
//	slug.Make("Café & Restaurant")          // "cafe-restaurant"
//	slug.Make("Straße in München")          // "strasse-in-munchen"
//	slug.Make("Long title", slug.MaxLength(4)) // "long"
//
// Diacritics are removed through Unicode decomposition, and every run of
// characters that are not letters or digits collapses into one separator.
package slug
