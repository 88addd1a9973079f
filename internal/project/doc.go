// Package project manages the portfolio projects shown on the public site and
// edited through the admin screens.
package project
