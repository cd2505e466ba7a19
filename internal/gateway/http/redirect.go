package http

import (
	"net/http"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
)

// redirectAfterAuth sends the client to the validated returnUrl, or to the
// family root when the target is missing or unsafe. Rejected targets are
// silently downgraded, never surfaced as errors.
func redirectAfterAuth(w http.ResponseWriter, r *http.Request, family domain.Family) {
	target := family.Root()
	if returnURL := r.URL.Query().Get("returnUrl"); returnURL != "" && domain.IsValidReturnURL(returnURL, family) {
		target = returnURL
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// validatedReturnURL returns the request's returnUrl if it is safe for the
// family, or empty.
func validatedReturnURL(r *http.Request, family domain.Family) string {
	returnURL := r.URL.Query().Get("returnUrl")
	if returnURL != "" && domain.IsValidReturnURL(returnURL, family) {
		return returnURL
	}
	return ""
}
