package http

import (
	"context"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
)

type ctxKey int

const (
	ctxKeyFamily ctxKey = iota
	ctxKeyHostname
)

func contextWithRequestDomain(ctx context.Context, family domain.Family, hostname string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyFamily, family)
	return context.WithValue(ctx, ctxKeyHostname, hostname)
}

// familyFromContext returns the domain family resolved by the middleware.
// Handlers behind the middleware can rely on it being present.
func familyFromContext(ctx context.Context) domain.Family {
	f, _ := ctx.Value(ctxKeyFamily).(domain.Family)
	return f
}

// hostnameFromContext returns the portless request hostname, used for cookie
// domain scoping.
func hostnameFromContext(ctx context.Context) string {
	h, _ := ctx.Value(ctxKeyHostname).(string)
	return h
}
