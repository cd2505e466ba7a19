package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCookieDomain(t *testing.T) {
	t.Parallel()

	require.Equal(t, ".mklv.tech", CookieDomain("login.mklv.tech"))
	require.Equal(t, ".mklv.tech", CookieDomain("mklv.tech"))
	require.Equal(t, ".localhost", CookieDomain("localhost"))
}

func TestIssue(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Issue(rec, "login.mklv.tech", "tok.en.value")

	got := rec.Header().Get("Set-Cookie")
	require.Equal(t,
		"session=tok.en.value; Domain=.mklv.tech; Path=/; Max-Age=604800; HttpOnly; Secure; SameSite=Lax",
		got,
	)
}

func TestClear_Idempotent(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Clear(rec, "login.mklv.tech")
	Clear(rec, "login.mklv.tech")

	headers := rec.Header().Values("Set-Cookie")
	require.Len(t, headers, 2)
	require.Equal(t, headers[0], headers[1])
	require.Equal(t,
		"session=; Domain=.mklv.tech; Path=/; Max-Age=0; HttpOnly; Secure; SameSite=Lax",
		headers[0],
	)
}

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("present", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/login", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "abc.def.ghi"})
		tok, ok := Read(r)
		require.True(t, ok)
		require.Equal(t, "abc.def.ghi", tok)
	})

	t.Run("absent", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/login", nil)
		_, ok := Read(r)
		require.False(t, ok)
	})

	t.Run("empty value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/login", nil)
		r.Header.Set("Cookie", "session=")
		_, ok := Read(r)
		require.False(t, ok)
	})
}
