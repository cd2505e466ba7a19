package jwtx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// jwksServer serves a JWKS document and lets tests flip it into failure mode.
type jwksServer struct {
	*httptest.Server
	fail atomic.Bool
	hits atomic.Int64
	jwks JWKS
}

func newJWKSServer(t *testing.T, jwks JWKS) *jwksServer {
	t.Helper()
	s := &jwksServer{jwks: jwks}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		require.Equal(t, JWKSPath, r.URL.Path)
		if s.fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(s.jwks)
	}))
	t.Cleanup(s.Close)
	return s
}

func TestRemoteKeySet_Key(t *testing.T) {
	t.Parallel()

	key := newTestKey(t)
	ctx := context.Background()

	t.Run("fetches and caches within TTL", func(t *testing.T) {
		srv := newJWKSServer(t, JWKS{Keys: []JWK{jwkFor(t, &key.PublicKey, "ES256")}})
		ks := NewRemoteKeySet(srv.URL, WithKeyTTL(time.Hour))

		pub, err := ks.Key(ctx)
		require.NoError(t, err)
		require.True(t, pub.Equal(&key.PublicKey))

		_, err = ks.Key(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), srv.hits.Load(), "second call must hit the cache")
	})

	t.Run("refetches once stale", func(t *testing.T) {
		srv := newJWKSServer(t, JWKS{Keys: []JWK{jwkFor(t, &key.PublicKey, "ES256")}})
		ks := NewRemoteKeySet(srv.URL, WithKeyTTL(time.Nanosecond))

		_, err := ks.Key(ctx)
		require.NoError(t, err)
		_, err = ks.Key(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(2), srv.hits.Load())
	})

	t.Run("stale key is not reused on fetch failure", func(t *testing.T) {
		srv := newJWKSServer(t, JWKS{Keys: []JWK{jwkFor(t, &key.PublicKey, "ES256")}})
		ks := NewRemoteKeySet(srv.URL, WithKeyTTL(time.Nanosecond))

		_, err := ks.Key(ctx)
		require.NoError(t, err)

		srv.fail.Store(true)
		_, err = ks.Key(ctx)
		require.Error(t, err)

		// A later successful fetch recovers.
		srv.fail.Store(false)
		pub, err := ks.Key(ctx)
		require.NoError(t, err)
		require.True(t, pub.Equal(&key.PublicKey))
	})

	t.Run("empty key set is an error", func(t *testing.T) {
		srv := newJWKSServer(t, JWKS{})
		ks := NewRemoteKeySet(srv.URL)
		_, err := ks.Key(ctx)
		require.ErrorIs(t, err, ErrNoKey)
	})

	t.Run("no base URL is an error", func(t *testing.T) {
		ks := NewRemoteKeySet("")
		_, err := ks.Key(ctx)
		require.ErrorIs(t, err, ErrNoKey)
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		ks := NewRemoteKeySet("http://127.0.0.1:1", WithHTTPClient(&http.Client{Timeout: 200 * time.Millisecond}))
		_, err := ks.Key(ctx)
		require.Error(t, err)
	})
}
