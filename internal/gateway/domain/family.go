package domain

import "strings"

// Family is a root domain whose subdomains share a session cookie,
// e.g. "mklv.tech" covers "login.mklv.tech" and "app.mklv.tech".
type Family string

func (f Family) String() string { return string(f) }

// Root returns the canonical https URL for the family's apex,
// used as the default post-login redirect target.
func (f Family) Root() string { return "https://" + string(f) + "/" }

// RootDomain returns the last two dot-separated labels of a hostname,
// e.g. "login.mklv.tech" -> "mklv.tech". Hostnames with fewer than two
// labels (like "localhost") are returned unchanged.
//
// There is no public-suffix-list awareness here: "foo.co.uk" resolves to
// "co.uk". That is a known limitation of the two-label rule, acceptable
// because the supported family list is small and curated.
func RootDomain(hostname string) string {
	parts := strings.Split(hostname, ".")
	if len(parts) >= 2 {
		return strings.Join(parts[len(parts)-2:], ".")
	}
	return hostname
}

// FamilySet is the fixed set of supported domain families, built once at
// startup from configuration. It is immutable after construction so lookups
// are safe from any goroutine.
type FamilySet struct {
	members map[string]Family
	ordered []Family
}

// NewFamilySet builds a FamilySet from a list of root domains. Entries are
// trimmed and lowercased; empty entries are ignored.
func NewFamilySet(roots []string) FamilySet {
	s := FamilySet{members: make(map[string]Family, len(roots))}
	for _, r := range roots {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		if _, ok := s.members[r]; ok {
			continue
		}
		f := Family(r)
		s.members[r] = f
		s.ordered = append(s.ordered, f)
	}
	return s
}

// Families returns the configured families in configuration order.
func (s FamilySet) Families() []Family {
	out := make([]Family, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Classify maps a hostname to its domain family by root-domain membership.
// Not belonging to any family is a normal outcome, reported via ok=false.
func (s FamilySet) Classify(hostname string) (Family, bool) {
	f, ok := s.members[RootDomain(strings.ToLower(hostname))]
	return f, ok
}

// FromHostHeader classifies the hostname carried in a Host header value,
// stripping an optional ":port" suffix. A missing header yields ok=false
// without consulting the set.
func (s FamilySet) FromHostHeader(host string) (Family, bool) {
	if host == "" {
		return "", false
	}
	return s.Classify(Hostname(host))
}

// Hostname strips an optional ":port" suffix from a Host header value.
func Hostname(host string) string {
	if h, _, found := strings.Cut(host, ":"); found {
		return h
	}
	return host
}
