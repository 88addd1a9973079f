package admin

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/dmitrymomot/cmsnav/core/handler"
)

const flashSession = "cmsnav_flash"

// withFlash stores msg in the flash session before next writes anything.
func (h *Handlers) withFlash(msg string, next handler.Response) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		sess, err := h.sessions.Get(r, flashSession)
		if err != nil && sess == nil {
			return err
		}
		sess.AddFlash(msg)
		if err := sess.Save(r, w); err != nil {
			return err
		}
		return next(w, r)
	}
}

// popFlashes returns and clears the pending flash messages. A tampered or
// expired cookie yields no messages.
func (h *Handlers) popFlashes(w http.ResponseWriter, r *http.Request) ([]string, error) {
	sess, err := h.sessions.Get(r, flashSession)
	if sess == nil {
		return nil, err
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}
	if err := sess.Save(r, w); err != nil {
		return nil, err
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs, nil
}

// NewSessionStore returns the cookie store used for flash messages.
func NewSessionStore(secret []byte, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
