// Package jwtx handles the token side of the session-trust boundary: JWK
// key-set parsing, ES256 signature verification via golang-jwt, unverified
// payload extraction, and a TTL-cached remote key set for providers that
// publish their verification keys over HTTP.
package jwtx

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"errors"
	"math/big"
)

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidJWK = errors.New("jwtx: invalid jwk")
	ErrNoKey      = errors.New("jwtx: no usable verification key")
)

// JWK is a public key entry in JSON Web Key format (RFC 7517). Only the
// fields needed for EC signature keys are modelled; anything else in the
// provider's document is ignored.
type JWK struct {
	Kty string `json:"kty"`
	Use string `json:"use,omitempty"`
	Alg string `json:"alg,omitempty"`
	Kid string `json:"kid,omitempty"`

	// EC fields
	Crv string `json:"crv,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
}

// JWKS is a JSON Web Key Set document.
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// ECDSAPublicKey imports the JWK as an ECDSA P-256 public key. The key type
// must be "EC" on curve "P-256"; anything else is ErrInvalidJWK.
func (j JWK) ECDSAPublicKey() (*ecdsa.PublicKey, error) {
	if j.Kty != "EC" || j.Crv != "P-256" {
		return nil, ErrInvalidJWK
	}
	xb, err := base64.RawURLEncoding.DecodeString(j.X)
	if err != nil {
		return nil, ErrInvalidJWK
	}
	yb, err := base64.RawURLEncoding.DecodeString(j.Y)
	if err != nil {
		return nil, ErrInvalidJWK
	}
	pub := &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(xb),
		Y:     new(big.Int).SetBytes(yb),
	}
	if !pub.Curve.IsOnCurve(pub.X, pub.Y) {
		return nil, ErrInvalidJWK
	}
	return pub, nil
}

// SelectES256 returns the first key in the set published for the ES256
// algorithm, imported as an ECDSA public key. An empty or mismatched set
// yields ErrNoKey.
func SelectES256(set JWKS) (*ecdsa.PublicKey, error) {
	for _, j := range set.Keys {
		if j.Alg != "ES256" {
			continue
		}
		pub, err := j.ECDSAPublicKey()
		if err != nil {
			return nil, err
		}
		return pub, nil
	}
	return nil, ErrNoKey
}
