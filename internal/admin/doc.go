// Package admin serves the project management screens under
// /refinery/projects: list, create, edit, remove and reorder, with flash
// messages kept in a signed cookie session.
package admin
