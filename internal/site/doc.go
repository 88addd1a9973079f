// Package site serves the public pages. Every page carries the navigation
// menu built from the page tree, with the current page marked selected and
// its ancestors active.
package site
