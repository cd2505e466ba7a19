package jwtx

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// JWKSPath is where identity providers in the Supabase family publish their
// signing keys, relative to the provider base URL.
const JWKSPath = "/auth/v1/.well-known/jwks.json"

// DefaultKeyTTL bounds how long a fetched verification key is trusted
// before it must be refetched.
const DefaultKeyTTL = time.Hour

// RemoteKeySet caches the provider's ES256 verification key, refetching it
// from the well-known JWKS endpoint once the cached copy is older than the
// TTL. A stale key is never reused: if the refetch fails, Key returns an
// error and callers degrade to their fallback trust path. A failed refetch
// also never clobbers the cached value, so a later successful fetch simply
// replaces it.
//
// The access pattern is read-mostly; concurrent refreshes after TTL expiry
// are harmless because any two successful fetches yield equivalent keys.
type RemoteKeySet struct {
	baseURL string
	ttl     time.Duration
	client  *http.Client

	mu        sync.RWMutex
	key       *ecdsa.PublicKey
	fetchedAt time.Time
}

// RemoteKeySetOption customizes a RemoteKeySet.
type RemoteKeySetOption func(*RemoteKeySet)

// WithKeyTTL overrides the cache TTL.
func WithKeyTTL(ttl time.Duration) RemoteKeySetOption {
	return func(s *RemoteKeySet) { s.ttl = ttl }
}

// WithHTTPClient overrides the HTTP client used for fetches.
func WithHTTPClient(c *http.Client) RemoteKeySetOption {
	return func(s *RemoteKeySet) { s.client = c }
}

// NewRemoteKeySet builds a key set for the given provider base URL. The
// base URL may be empty; every Key call will then fail, which downstream
// trust logic treats as "key unavailable".
func NewRemoteKeySet(baseURL string, opts ...RemoteKeySetOption) *RemoteKeySet {
	s := &RemoteKeySet{
		baseURL: baseURL,
		ttl:     DefaultKeyTTL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns a verification key no older than the TTL, fetching a fresh
// one when needed. Fetch failures surface as errors; the caller decides how
// to degrade.
func (s *RemoteKeySet) Key(ctx context.Context) (*ecdsa.PublicKey, error) {
	s.mu.RLock()
	key, fetchedAt := s.key, s.fetchedAt
	s.mu.RUnlock()

	if key != nil && time.Since(fetchedAt) < s.ttl {
		return key, nil
	}

	fresh, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.key = fresh
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return fresh, nil
}

func (s *RemoteKeySet) fetch(ctx context.Context) (*ecdsa.PublicKey, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("jwtx: no provider base URL configured: %w", ErrNoKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+JWKSPath, nil)
	if err != nil {
		return nil, fmt.Errorf("jwtx: build jwks request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jwtx: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwtx: fetch jwks: unexpected status %d", resp.StatusCode)
	}

	var set JWKS
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("jwtx: decode jwks: %w", err)
	}

	pub, err := SelectES256(set)
	if err != nil {
		return nil, err
	}
	return pub, nil
}
