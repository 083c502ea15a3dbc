package repository

import (
	"context"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

const createUserSQL = `
INSERT INTO users (id, email, password_hash, full_name, phone, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createUserSQL,
		u.ID(),
		u.Email().String(),
		u.PasswordHash(),
		u.FullName(),
		u.Phone().String(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		if pgErrCode(err) == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

const updateLastLoginSQL = `
UPDATE users
SET last_login = now(), updated_at = now()
WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, updateLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
