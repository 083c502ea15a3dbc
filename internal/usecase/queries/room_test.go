//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoomReadStore struct {
	rooms          []*queries.RoomView
	availableCalls int
}

func (s *stubRoomReadStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.RoomView, error) {
	if len(s.rooms) == 0 {
		return nil, nil
	}
	return s.rooms[0], nil
}

func (s *stubRoomReadStore) FindAll(_ context.Context, _ queries.RoomFilters) ([]*queries.RoomView, error) {
	return s.rooms, nil
}

func (s *stubRoomReadStore) FindAvailable(_ context.Context, _, _ time.Time, _ queries.RoomFilters) ([]*queries.RoomView, error) {
	s.availableCalls++
	return s.rooms, nil
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return d
}

func TestAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("valid range reaches the store", func(t *testing.T) {
		store := &stubRoomReadStore{rooms: []*queries.RoomView{{ID: uuid.New(), Number: "101"}}}
		q := queries.NewRoomQueries(store)

		views, err := q.Available(ctx, day(t, "2026-09-01"), day(t, "2026-09-04"), queries.RoomFilters{})

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, 1, store.availableCalls)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		store := &stubRoomReadStore{}
		q := queries.NewRoomQueries(store)

		_, err := q.Available(ctx, day(t, "2026-09-04"), day(t, "2026-09-01"), queries.RoomFilters{})

		require.ErrorIs(t, err, queries.ErrInvalidDateRange)
		assert.Zero(t, store.availableCalls)
	})

	t.Run("zero-night range is rejected", func(t *testing.T) {
		store := &stubRoomReadStore{}
		q := queries.NewRoomQueries(store)

		_, err := q.Available(ctx, day(t, "2026-09-01"), day(t, "2026-09-01"), queries.RoomFilters{})

		require.ErrorIs(t, err, queries.ErrInvalidDateRange)
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
		assert.Zero(t, store.availableCalls)
	})

	t.Run("unknown room type filter is rejected", func(t *testing.T) {
		store := &stubRoomReadStore{}
		q := queries.NewRoomQueries(store)
		roomType := "penthouse"

		_, err := q.Available(ctx, day(t, "2026-09-01"), day(t, "2026-09-04"), queries.RoomFilters{RoomType: &roomType})

		require.ErrorIs(t, err, queries.ErrInvalidRoomFilter)
		assert.Zero(t, store.availableCalls)
	})

	t.Run("non-positive guest filter is rejected", func(t *testing.T) {
		store := &stubRoomReadStore{}
		q := queries.NewRoomQueries(store)
		minGuests := 0

		_, err := q.Available(ctx, day(t, "2026-09-01"), day(t, "2026-09-04"), queries.RoomFilters{MinGuests: &minGuests})

		require.ErrorIs(t, err, queries.ErrInvalidRoomFilter)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown room type filter is rejected", func(t *testing.T) {
		q := queries.NewRoomQueries(&stubRoomReadStore{})
		roomType := "dormitory"

		_, err := q.List(ctx, queries.RoomFilters{RoomType: &roomType})

		require.ErrorIs(t, err, queries.ErrInvalidRoomFilter)
	})

	t.Run("valid filter passes through", func(t *testing.T) {
		store := &stubRoomReadStore{rooms: []*queries.RoomView{{Number: "201"}, {Number: "202"}}}
		q := queries.NewRoomQueries(store)
		roomType := "double"

		views, err := q.List(ctx, queries.RoomFilters{RoomType: &roomType})

		require.NoError(t, err)
		require.Len(t, views, 2)
	})
}
