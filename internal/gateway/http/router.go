// Package http wires the gateway's request-handling surface: the domain
// middleware, the login/callback/logout/error flows, and the health probe.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
	"github.com/dmikalova/login-gateway/internal/gateway/service"
	"github.com/dmikalova/login-gateway/internal/gateway/store"
	"github.com/dmikalova/login-gateway/pkg/httpx"
	"github.com/dmikalova/login-gateway/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	families     domain.FamilySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	Trust *service.TrustService
	Store store.Store // nil when analytics is disabled

	GoogleClientID string
	ProviderURL    string
	PublishableKey string
}

func NewRouter(families domain.FamilySet, buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		families:     families,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	// Domain classification runs globally, before routing has a chance to
	// 404, so unrecognized hosts learn nothing about the URL space. Only
	// the health probe bypasses it.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		exceptHealth(DomainMiddleware(r.families)),
	}

	return r
}

// ApplyRoutes registers all handlers.
func (r *Router) ApplyRoutes() {
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	login := &LoginHandler{
		Trust:          r.Trust,
		GoogleClientID: r.GoogleClientID,
		ProviderURL:    r.ProviderURL,
		PublishableKey: r.PublishableKey,
	}
	// The login form is also the site root on login.<family> hosts.
	r.Mux.Handle("GET /{$}", httpx.Chain(login, httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /login", httpx.Chain(login, httpx.RateLimitByIP(httpx.LenientLimit)))

	// Callback mints session cookies; rate limited hardest.
	callback := &CallbackHandler{
		Store:          r.Store,
		ProviderURL:    r.ProviderURL,
		PublishableKey: r.PublishableKey,
	}
	r.Mux.Handle("GET /callback", httpx.Chain(callback, httpx.RateLimitByIP(httpx.StrictLimit)))

	r.Mux.Handle("GET /logout", httpx.Chain(&LogoutHandler{}, httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /error", httpx.Chain(&ErrorPageHandler{}, httpx.RateLimitByIP(httpx.LenientLimit)))
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// exceptHealth applies mw to everything but the health probe, which load
// balancers hit with arbitrary Host headers.
func exceptHealth(mw httpx.Middleware) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		guarded := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}
			guarded.ServeHTTP(w, r)
		})
	}
}
