package http

import (
	"net/http"

	"github.com/dmikalova/login-gateway/internal/gateway/session"
)

// LogoutHandler clears the session cookie unconditionally and redirects.
// There is no session to validate on the way out; an invalid or missing
// cookie and a valid one end in the same place.
type LogoutHandler struct{}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session.Clear(w, hostnameFromContext(ctx))
	redirectAfterAuth(w, r, familyFromContext(ctx))
}
