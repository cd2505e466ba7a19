// Package session manages the shared session cookie: issuing it scoped to a
// domain family's root, clearing it, and reading it back from requests.
package session

import (
	"fmt"
	"net/http"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
)

const (
	// CookieName is the fixed name of the session cookie on every family.
	CookieName = "session"

	// MaxAge is the cookie lifetime: 7 days, in seconds.
	MaxAge = 604800
)

// CookieDomain computes the Domain attribute for a hostname. The leading dot
// makes the cookie visible to every subdomain of the root, which is the whole
// point of the shared-session gateway. The hostname must already be portless.
func CookieDomain(hostname string) string {
	return "." + domain.RootDomain(hostname)
}

// Issue sets the session cookie carrying the provider token.
//
// The Set-Cookie header is written by hand because net/http strips the
// leading dot from the Domain attribute, and the raw dotted form is what the
// sibling properties have deployed against.
func Issue(w http.ResponseWriter, hostname, token string) {
	w.Header().Add("Set-Cookie", fmt.Sprintf(
		"%s=%s; Domain=%s; Path=/; Max-Age=%d; HttpOnly; Secure; SameSite=Lax",
		CookieName, token, CookieDomain(hostname), MaxAge,
	))
}

// Clear expires the session cookie immediately. Safe to call repeatedly;
// the emitted header is identical each time.
func Clear(w http.ResponseWriter, hostname string) {
	w.Header().Add("Set-Cookie", fmt.Sprintf(
		"%s=; Domain=%s; Path=/; Max-Age=0; HttpOnly; Secure; SameSite=Lax",
		CookieName, CookieDomain(hostname),
	))
}

// Read extracts the session token from the request's cookies.
func Read(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
