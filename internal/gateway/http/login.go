package http

import (
	"net/http"

	"github.com/dmikalova/login-gateway/internal/gateway/service"
	"github.com/dmikalova/login-gateway/internal/gateway/session"
	"github.com/dmikalova/login-gateway/internal/gateway/templates"
	"github.com/dmikalova/login-gateway/pkg/slogx"
)

// LoginHandler serves the sign-in page. A visitor arriving with a session
// cookie that still passes the trust check is redirected straight through;
// an untrusted cookie is cleared before the form renders so a broken session
// can't stick around.
type LoginHandler struct {
	Trust *service.TrustService

	GoogleClientID string
	ProviderURL    string
	PublishableKey string
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	family := familyFromContext(ctx)
	hostname := hostnameFromContext(ctx)

	if token, ok := session.Read(r); ok {
		if h.Trust.IsTrusted(ctx, token) {
			redirectAfterAuth(w, r, family)
			return
		}
		session.Clear(w, hostname)
	}

	if h.GoogleClientID == "" || h.PublishableKey == "" {
		slogx.FromContext(ctx).Error("login page missing required configuration",
			"have_client_id", h.GoogleClientID != "",
			"have_publishable_key", h.PublishableKey != "",
		)
		http.Error(w, "Server configuration error", http.StatusInternalServerError)
		return
	}

	page, err := templates.Render("login.html", map[string]string{
		"DOMAIN":           family.String(),
		"ERROR":            templates.JSValue(templates.EscapeHTML(r.URL.Query().Get("error"))),
		"RETURN_URL":       templates.JSValue(validatedReturnURL(r, family)),
		"GOOGLE_CLIENT_ID": h.GoogleClientID,
		"SUPABASE_URL":     h.ProviderURL,
		"SUPABASE_KEY":     h.PublishableKey,
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to render login page", "error", err)
		http.Error(w, "Server configuration error", http.StatusInternalServerError)
		return
	}

	writeHTML(w, page)
}

func writeHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}
