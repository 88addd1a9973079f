// Package validator checks structs against `validate` tags and reports every
// failing rule as a ValidationError.
//
//	type Params struct {
//		Title string `validate:"required;max:255"`
//		Link  string `validate:"max:2048;url"`
//	}
//	if err := validator.ValidateStruct(&params); err != nil {
//		var verrs validator.ValidationErrors
//		errors.As(err, &verrs)
//	}
//
// Rules are separated by semicolons and take comma separated parameters after
// a colon or an equals sign. Each error carries a TranslationKey ("validation.required") and
// values so callers can render localized messages.
package validator
