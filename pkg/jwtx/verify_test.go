package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestVerifyES256(t *testing.T) {
	t.Parallel()

	key := newTestKey(t)
	leeway := time.Minute

	t.Run("valid token passes", func(t *testing.T) {
		token := signToken(t, key, "user-1", time.Now().Add(time.Hour))
		p, err := VerifyES256(token, &key.PublicKey, leeway)
		require.NoError(t, err)
		require.Equal(t, "user-1", p.Subject)
	})

	t.Run("expired token fails", func(t *testing.T) {
		token := signToken(t, key, "user-1", time.Now().Add(-2*time.Minute))
		_, err := VerifyES256(token, &key.PublicKey, leeway)
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("leeway tolerates small skew", func(t *testing.T) {
		token := signToken(t, key, "user-1", time.Now().Add(-10*time.Second))
		_, err := VerifyES256(token, &key.PublicKey, leeway)
		require.NoError(t, err)
	})

	t.Run("wrong key fails", func(t *testing.T) {
		other := newTestKey(t)
		token := signToken(t, other, "user-1", time.Now().Add(time.Hour))
		_, err := VerifyES256(token, &key.PublicKey, leeway)
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, err := VerifyES256("not.a.jwt", &key.PublicKey, leeway)
		require.Error(t, err)
	})
}

func TestSelectES256(t *testing.T) {
	t.Parallel()

	key := newTestKey(t)

	t.Run("selects first ES256 key", func(t *testing.T) {
		set := JWKS{Keys: []JWK{
			{Kty: "RSA", Alg: "RS256", Kid: "rsa"},
			jwkFor(t, &key.PublicKey, "ES256"),
		}}
		pub, err := SelectES256(set)
		require.NoError(t, err)
		require.True(t, pub.Equal(&key.PublicKey))
	})

	t.Run("empty set yields ErrNoKey", func(t *testing.T) {
		_, err := SelectES256(JWKS{})
		require.ErrorIs(t, err, ErrNoKey)
	})

	t.Run("no matching algorithm yields ErrNoKey", func(t *testing.T) {
		set := JWKS{Keys: []JWK{{Kty: "OKP", Alg: "EdDSA"}}}
		_, err := SelectES256(set)
		require.ErrorIs(t, err, ErrNoKey)
	})

	t.Run("ES256 entry with bad coordinates is invalid", func(t *testing.T) {
		set := JWKS{Keys: []JWK{{Kty: "EC", Alg: "ES256", Crv: "P-256", X: "!!!", Y: "!!!"}}}
		_, err := SelectES256(set)
		require.ErrorIs(t, err, ErrInvalidJWK)
	})
}
