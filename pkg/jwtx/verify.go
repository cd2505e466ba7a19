package jwtx

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
)

// VerifyES256 validates the token's ES256 signature against pub and checks
// its registered time claims with the given leeway for clock skew. The
// expiry claim is required; a token with no exp is rejected.
func VerifyES256(token string, pub *ecdsa.PublicKey, leeway time.Duration) (*Payload, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
		jwt.WithLeeway(leeway),
		jwt.WithExpirationRequired(),
	)

	claims := &jwt.RegisteredClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return pub, nil
	})
	switch {
	case err == nil && parsed.Valid:
		// fall through
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrInvalidSig
	case err != nil:
		return nil, fmt.Errorf("jwtx: parse or verify: %w", err)
	default:
		return nil, ErrInvalidSig
	}

	p := &Payload{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		p.Expiry = claims.ExpiresAt.Unix()
	}
	return p, nil
}
