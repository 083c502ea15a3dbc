package queries

import (
	"context"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrAccessDenied    = errs.New("access denied")
)

type BookingQueries interface {
	// GetByID enforces ownership: guests see only their own bookings, staff
	// see everything.
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the ownership check; for read-after-write inside
	// command handlers.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	// ListAll is the staff surface; status narrows when non-nil.
	ListAll(ctx context.Context, status *string) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindAll(ctx context.Context, status *string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	if view.UserID != actorID && !actorRole.IsStaff() {
		// Reported as not found so booking ids cannot be probed
		return nil, ErrBookingNotFound
	}

	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, status *string) ([]*BookingView, error) {
	return q.store.FindAll(ctx, status)
}
