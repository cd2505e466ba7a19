// Package service holds the gateway's trust decisions.
package service

import (
	"context"
	"crypto/ecdsa"
	"time"

	"github.com/dmikalova/login-gateway/pkg/jwtx"
	"github.com/dmikalova/login-gateway/pkg/slogx"
)

// DefaultLeeway is the clock-skew tolerance applied on the verified path.
const DefaultLeeway = time.Minute

// KeySource supplies the provider's current verification key. Implemented by
// jwtx.RemoteKeySet.
type KeySource interface {
	Key(ctx context.Context) (*ecdsa.PublicKey, error)
}

// TrustService decides whether a bearer token represents an authenticated
// principal. When the provider's verification key is obtainable, the token's
// ES256 signature is verified and its expiry checked with a small clock-skew
// leeway. When no key can be obtained, the service degrades to an
// expiry-only check on the unverified payload — a documented weaker
// guarantee, logged as a warning, with no leeway to partially offset it.
type TrustService struct {
	Keys KeySource

	// Leeway for the verified path's expiry check. Zero means DefaultLeeway.
	Leeway time.Duration
}

// IsTrusted reports whether the token should be treated as an authenticated
// session. Every failure mode resolves to false; nothing propagates.
func (s *TrustService) IsTrusted(ctx context.Context, token string) bool {
	pub, err := s.Keys.Key(ctx)
	if err != nil {
		slogx.FromContext(ctx).Warn("verification key unavailable, using expiry-only fallback", "error", err)

		p, derr := jwtx.DecodeUnverified(token)
		return derr == nil && p.Expiry > time.Now().Unix()
	}

	if _, err := jwtx.VerifyES256(token, pub, s.leeway()); err != nil {
		return false
	}
	return true
}

func (s *TrustService) leeway() time.Duration {
	if s.Leeway > 0 {
		return s.Leeway
	}
	return DefaultLeeway
}
