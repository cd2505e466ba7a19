package postgres

import (
	"context"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
)

// DomainLoginRepo implements store.DomainLogins on PostgreSQL.
type DomainLoginRepo struct{ pool PgxPool }

// Upsert records a login for (userID, family). First sight inserts the row;
// a conflict bumps last_login_at and the counter. The row's defaults own
// first_login_at and the initial count.
func (r *DomainLoginRepo) Upsert(ctx context.Context, userID string, family domain.Family) error {
	const q = `
INSERT INTO domain_logins (user_id, domain, last_login_at)
VALUES ($1, $2, NOW())
ON CONFLICT (user_id, domain)
DO UPDATE SET
	last_login_at = NOW(),
	login_count = domain_logins.login_count + 1`
	_, err := r.pool.Exec(ctx, q, userID, string(family))
	return err
}

// ListByUser returns the user's per-family login history, most recent first.
func (r *DomainLoginRepo) ListByUser(ctx context.Context, userID string) ([]domain.DomainLogin, error) {
	const q = `
SELECT domain, first_login_at, last_login_at, login_count
FROM domain_logins
WHERE user_id = $1
ORDER BY last_login_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logins []domain.DomainLogin
	for rows.Next() {
		var l domain.DomainLogin
		var fam string
		if err := rows.Scan(&fam, &l.FirstLoginAt, &l.LastLoginAt, &l.LoginCount); err != nil {
			return nil, err
		}
		l.Family = domain.Family(fam)
		logins = append(logins, l)
	}
	return logins, rows.Err()
}
