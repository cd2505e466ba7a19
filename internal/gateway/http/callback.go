package http

import (
	"context"
	"net/http"
	"time"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
	"github.com/dmikalova/login-gateway/internal/gateway/session"
	"github.com/dmikalova/login-gateway/internal/gateway/store"
	"github.com/dmikalova/login-gateway/internal/gateway/templates"
	"github.com/dmikalova/login-gateway/pkg/jwtx"
	"github.com/dmikalova/login-gateway/pkg/slogx"
)

// analyticsTimeout bounds the detached domain-login write so an unhealthy
// database can't pile up goroutines.
const analyticsTimeout = 5 * time.Second

// CallbackHandler completes the provider round-trip. With a token in the
// query string (One Tap, or the extraction page calling back) it issues the
// session cookie and redirects; the provider already verified the principal
// before handing the client this token, so the cookie is issued without a
// second verification here. Without a token it serves the client-side
// extraction page, because a hash-fragment redirect never reaches the server.
type CallbackHandler struct {
	Store store.Store // nil when analytics is disabled

	ProviderURL    string
	PublishableKey string
}

func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	family := familyFromContext(ctx)
	hostname := hostnameFromContext(ctx)

	token := r.URL.Query().Get("token")
	if token == "" {
		h.serveExtractionPage(w, r)
		return
	}

	session.Issue(w, hostname, token)

	h.recordLogin(ctx, token, family)

	redirectAfterAuth(w, r, family)
}

// recordLogin upserts the domain-login row for analytics, detached from the
// response path: the redirect never waits on the write, and a failure is
// only ever logged.
func (h *CallbackHandler) recordLogin(ctx context.Context, token string, family domain.Family) {
	if h.Store == nil {
		return
	}
	payload, err := jwtx.DecodeUnverified(token)
	if err != nil || payload.Subject == "" {
		return
	}

	log := slogx.FromContext(ctx)
	logins := h.Store.DomainLogins()
	userID := payload.Subject

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), analyticsTimeout)
		defer cancel()
		if err := logins.Upsert(ctx, userID, family); err != nil {
			log.Error("failed to record domain login",
				"user_id", userID, "domain", family.String(), "error", err)
		}
	}()
}

func (h *CallbackHandler) serveExtractionPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.ProviderURL == "" || h.PublishableKey == "" {
		slogx.FromContext(ctx).Error("callback page missing required configuration")
		http.Error(w, "Server configuration error", http.StatusInternalServerError)
		return
	}

	page, err := templates.Render("callback.html", map[string]string{
		"SUPABASE_URL": h.ProviderURL,
		"SUPABASE_KEY": h.PublishableKey,
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to render callback page", "error", err)
		http.Error(w, "Server configuration error", http.StatusInternalServerError)
		return
	}

	writeHTML(w, page)
}
