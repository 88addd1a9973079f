// Package middleware holds the net/http middleware shared by the public site
// and the admin area.
//
// Every middleware has a plain constructor and a WithConfig variant; configs
// carry a Skip func for requests that should pass through untouched.
//
//	r := chi.NewRouter()
//	r.Use(
//		middleware.RequestID(),
//		middleware.Logging(log),
//		middleware.SecurityHeaders(),
//		middleware.Locale(translations, "site"),
//	)
package middleware
