package domain

import (
	"net/url"
	"strings"
)

// IsValidReturnURL reports whether a caller-supplied post-login redirect
// target is safe to follow for the given trusted family. It is total:
// malformed input yields false, never a panic or error.
//
// Checks run in order, first match wins:
//
//  1. javascript: and data: URLs are rejected regardless of casing.
//  2. Root-relative paths are accepted; they cannot change origin.
//     Protocol-relative "//host" forms are not root-relative and are
//     rejected outright.
//  3. Anything else must parse as an absolute URL whose hostname's root
//     domain equals the trusted family exactly. Mere membership in some
//     other supported family is not enough; that would let one tenant
//     redirect into a sibling's session context.
func IsValidReturnURL(candidate string, family Family) bool {
	lower := strings.ToLower(candidate)
	if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "data:") {
		return false
	}

	if strings.HasPrefix(candidate, "/") {
		return !strings.HasPrefix(candidate, "//")
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}
	return RootDomain(strings.ToLower(host)) == string(family)
}
