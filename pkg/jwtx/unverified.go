package jwtx

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Payload is the subset of token claims the gateway cares about: who the
// principal is and when the token stops being valid.
type Payload struct {
	Subject string `json:"sub"`
	Expiry  int64  `json:"exp"`
}

// DecodeUnverified extracts the payload of a JWT without any cryptographic
// check. The token must have exactly three dot-separated segments and a
// base64url JSON middle segment; anything else is ErrMalformed.
//
// Callers must treat the result as attacker-controlled. It is only suitable
// for pulling out the subject for analytics and for the expiry-only fallback
// when no verification key can be obtained.
func DecodeUnverified(token string) (*Payload, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformed
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		// Some issuers pad their segments.
		raw, err = base64.URLEncoding.DecodeString(parts[1])
		if err != nil {
			return nil, ErrMalformed
		}
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, ErrMalformed
	}
	return &p, nil
}
