package readstore

import (
	"context"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	row := s.db.QueryRow(ctx, `
SELECT id, email, full_name, phone, role, is_active, password_hash
FROM users
WHERE email = $1`, email.String())

	var (
		view  queries.AuthorizedUserView
		phone pgtype.Text
		hash  string
	)
	err := row.Scan(&view.ID, &view.Email, &view.FullName, &phone, &view.Role, &view.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	if p := pgconv.StringPtrFromPgtype(phone); p != nil {
		view.Phone = *p
	}
	return &view, hash, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := s.db.QueryRow(ctx, `
SELECT id, email, full_name, phone, role, is_active
FROM users
WHERE id = $1`, id)

	var (
		view  queries.AuthorizedUserView
		phone pgtype.Text
	)
	err := row.Scan(&view.ID, &view.Email, &view.FullName, &phone, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	if p := pgconv.StringPtrFromPgtype(phone); p != nil {
		view.Phone = *p
	}
	return &view, nil
}
