package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, ErrCodeAccessDenied, ParseErrorCode("access_denied"))
	require.Equal(t, ErrCodeAuthFailed, ParseErrorCode("auth_failed"))
	require.Equal(t, ErrCodeDefault, ParseErrorCode("bogus"))
	require.Equal(t, ErrCodeDefault, ParseErrorCode(""))
	// "default" itself is not in the parse switch but maps to the default info anyway.
	require.Equal(t, ErrCodeDefault, ParseErrorCode("default"))
}

func TestErrorCode_Info(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Access Denied", ErrCodeAccessDenied.Info().Title)
	require.Equal(t, "Sign In Error", ErrCodeDefault.Info().Title)

	// Every named code must have distinct, non-empty copy.
	codes := []ErrorCode{
		ErrCodeAuthFailed, ErrCodeAccessDenied, ErrCodeCancelled,
		ErrCodeNetworkError, ErrCodeInvalidRequest, ErrCodeServerError, ErrCodeDefault,
	}
	seen := make(map[string]bool)
	for _, c := range codes {
		info := c.Info()
		require.NotEmpty(t, info.Title, "code %s", c)
		require.NotEmpty(t, info.Message, "code %s", c)
		require.False(t, seen[info.Title], "duplicate title %q", info.Title)
		seen[info.Title] = true
	}
}
