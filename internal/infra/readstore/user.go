package readstore

import (
	"context"

	"turfbook/internal/infra/db"
	"turfbook/internal/pkg/pgconv"
	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

const findUserByIDSQL = `
SELECT id, email, role, is_active, last_login FROM users WHERE id = $1`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &lastLogin)
	if err != nil {
		return nil, classifyPgErr("failed to find user", err)
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, nil
}

const findUserByEmailSQL = `
SELECT id, email, role, is_active, last_login, password_hash FROM users WHERE email = $1`

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
		hash      string
	)
	err := s.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &lastLogin, &hash)
	if err != nil {
		return nil, "", classifyPgErr("failed to find user by email", err)
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, hash, nil
}
