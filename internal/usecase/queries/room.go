package queries

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound      = errs.New("room not found")
	ErrInvalidDateRange  = errs.New("invalid date range")
	ErrInvalidRoomFilter = errs.New("invalid room filter")
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, filters RoomFilters) ([]*RoomView, error)
	// Available returns rooms with no active booking overlapping the half-open
	// date range. Derived on read from current booking state, never cached.
	Available(ctx context.Context, checkIn, checkOut time.Time, filters RoomFilters) ([]*RoomView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context, filters RoomFilters) ([]*RoomView, error)
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time, filters RoomFilters) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context, filters RoomFilters) ([]*RoomView, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	return q.store.FindAll(ctx, filters)
}

func (q *roomQueriesImpl) Available(ctx context.Context, checkIn, checkOut time.Time, filters RoomFilters) ([]*RoomView, error) {
	if _, err := booking.NewStayPeriod(checkIn, checkOut); err != nil {
		return nil, errs.Tag(err, ErrInvalidDateRange)
	}
	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	return q.store.FindAvailable(ctx, checkIn, checkOut, filters)
}

func validateFilters(filters RoomFilters) error {
	if filters.RoomType != nil {
		if _, err := room.NewType(*filters.RoomType); err != nil {
			return errs.Tag(err, ErrInvalidRoomFilter)
		}
	}
	if filters.MinGuests != nil && *filters.MinGuests <= 0 {
		return ErrInvalidRoomFilter
	}
	return nil
}
