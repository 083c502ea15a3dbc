package queries

import (
	"context"

	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UserReadStore interface {
	// FindByEmail also returns the stored password hash for credential checks.
	FindByEmail(ctx context.Context, email user.Email) (*AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}
