package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &Store{pool: mock, schema: "login"}, mock
}

func TestDomainLoginRepo_Upsert(t *testing.T) {
	s, mock := newMockStore(t)
	defer mock.Close()
	repo := s.DomainLogins()
	ctx := context.Background()

	t.Run("issues the conflict-aware insert", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO domain_logins .*ON CONFLICT \(user_id, domain\)`).
			WithArgs("user-1", "mklv.tech").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.Upsert(ctx, "user-1", domain.Family("mklv.tech")))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO domain_logins`).
			WithArgs("user-1", "mklv.tech").
			WillReturnError(errors.New("connection reset"))

		require.Error(t, repo.Upsert(ctx, "user-1", domain.Family("mklv.tech")))
	})
}

func TestDomainLoginRepo_ListByUser(t *testing.T) {
	s, mock := newMockStore(t)
	defer mock.Close()
	repo := s.DomainLogins()
	ctx := context.Background()

	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT domain, first_login_at, last_login_at, login_count FROM domain_logins WHERE user_id = \$1 ORDER BY last_login_at DESC`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"domain", "first_login_at", "last_login_at", "login_count"}).
			AddRow("mklv.tech", first, last, 4).
			AddRow("keyforge.cards", first, first, 1))

	logins, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, logins, 2)
	require.Equal(t, domain.Family("mklv.tech"), logins[0].Family)
	require.Equal(t, 4, logins[0].LoginCount)
	require.Equal(t, last, logins[0].LastLoginAt)
	require.Equal(t, domain.Family("keyforge.cards"), logins[1].Family)
	require.NoError(t, mock.ExpectationsWereMet())
}
