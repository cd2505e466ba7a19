package http

import (
	"fmt"
	"net/http"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
	"github.com/dmikalova/login-gateway/pkg/httpx"
)

// DomainMiddleware classifies the Host header against the supported family
// set before anything else runs. Requests from unrecognized hosts get a 400
// and never reach session or redirect logic, so no trust decision leaks to
// a host the gateway doesn't serve.
func DomainMiddleware(families domain.FamilySet) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			family, ok := families.FromHostHeader(r.Host)
			if !ok {
				host := r.Host
				if host == "" {
					host = "unknown"
				}
				http.Error(w, fmt.Sprintf("Unsupported domain: %s", host), http.StatusBadRequest)
				return
			}

			ctx := contextWithRequestDomain(r.Context(), family, domain.Hostname(r.Host))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
