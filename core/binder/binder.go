package binder

import "net/http"

// Binder binds request data into v, which must be a pointer to a struct.
type Binder func(r *http.Request, v any) error
