package domain

import "time"

// DomainLogin is one row of per-user login analytics: when a user first and
// most recently signed in on a family, and how many times. Rows are upserted
// by the callback flow and never deleted by the gateway.
type DomainLogin struct {
	Family       Family
	FirstLoginAt time.Time
	LastLoginAt  time.Time
	LoginCount   int
}
