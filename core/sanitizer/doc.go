// Package sanitizer cleans user input in place using struct tags.
//
//	type Params struct {
//		Title       string `sanitize:"single_line"`
//		Description string `sanitize:"trim;no_control"`
//	}
//	sanitizer.SanitizeStruct(&params)
//
// Rules run left to right. Unknown rule names are ignored so a typo never
// breaks a request; RegisterSanitizer adds new ones.
package sanitizer
