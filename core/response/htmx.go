package response

// HTMX headers consulted by the redirect responses.
const (
	HeaderHXRequest  = "HX-Request"
	HeaderHXLocation = "HX-Location"
)
