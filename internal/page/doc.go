// Package page loads the navigable pages of the site and turns them into the
// menu tree rendered on every public page.
package page
