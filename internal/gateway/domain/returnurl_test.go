package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidReturnURL(t *testing.T) {
	t.Parallel()

	const family = Family("mklv.tech")

	t.Run("root-relative paths are accepted", func(t *testing.T) {
		for _, p := range []string{"/", "/dashboard", "/a/b?c=d#e"} {
			require.True(t, IsValidReturnURL(p, family), "path %q", p)
		}
	})

	t.Run("script and data URIs are rejected case-insensitively", func(t *testing.T) {
		for _, u := range []string{
			"javascript:alert(1)",
			"JavaScript:alert(1)",
			"JAVASCRIPT:void(0)",
			"data:text/html,<script>alert(1)</script>",
			"DATA:text/plain,x",
		} {
			require.False(t, IsValidReturnURL(u, family), "uri %q", u)
		}
	})

	t.Run("same-family absolute URLs are accepted", func(t *testing.T) {
		require.True(t, IsValidReturnURL("https://mklv.tech/", family))
		require.True(t, IsValidReturnURL("https://app.mklv.tech/settings", family))
	})

	t.Run("cross-family URLs are rejected", func(t *testing.T) {
		// Another supported family is still not this family.
		require.False(t, IsValidReturnURL("https://keyforge.cards/x", family))
		require.False(t, IsValidReturnURL("https://evil.com/steal", family))
	})

	t.Run("protocol-relative URLs are rejected", func(t *testing.T) {
		require.False(t, IsValidReturnURL("//evil.com/steal", family))
		require.False(t, IsValidReturnURL("//mklv.tech/", family))
	})

	t.Run("lookalike hosts are rejected", func(t *testing.T) {
		require.False(t, IsValidReturnURL("https://mklv.tech.evil.com/", family))
		require.False(t, IsValidReturnURL("https://notmklv.tech.example/", family))
	})

	t.Run("malformed input yields false", func(t *testing.T) {
		for _, u := range []string{"", "http://%zz", "vbscript:msgbox", "ftp:", "relative/path"} {
			require.False(t, IsValidReturnURL(u, family), "input %q", u)
		}
	})
}
