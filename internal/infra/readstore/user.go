package readstore

import (
	"context"

	"eventlink/internal/infra"
	"eventlink/internal/infra/db"
	"eventlink/internal/pkg/pgconv"
	"eventlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, is_active, last_login, created_at
		FROM users WHERE id = $1`

	var v queries.AuthorizedUserView
	var lastLogin pgtype.Timestamptz
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Email, &v.Role, &v.IsActive, &lastLogin, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, nil
}

// FindByEmail also returns the password hash so the login command can
// compare it without a second query.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, role, is_active, last_login, created_at, password_hash
		FROM users WHERE email = $1`

	var v queries.AuthorizedUserView
	var lastLogin pgtype.Timestamptz
	var hash string
	err := r.db.QueryRow(ctx, query, email).Scan(
		&v.ID, &v.Email, &v.Role, &v.IsActive, &lastLogin, &v.CreatedAt, &hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, hash, nil
}
