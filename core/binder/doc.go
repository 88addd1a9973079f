// Package binder maps request data onto tagged structs.
//
// Only tagged fields are bound, so a params struct doubles as the whitelist
// of fields a handler accepts:
//
//	type projectForm struct {
//		Title string `form:"title"`
//		Link  string `form:"link"`
//	}
//
//	var f projectForm
//	if err := binder.Form()(r, &f); err != nil {
//		return response.Error(response.ErrBadRequest.WithError(err))
//	}
//
// Path parameters are read through an extractor such as chi.URLParam:
//
//	var p struct {
//		ID int64 `path:"id"`
//	}
//	err := binder.Path(chi.URLParam)(r, &p)
package binder
