// Package markup holds small reusable HTML fragments rendered as templ
// components.
package markup
