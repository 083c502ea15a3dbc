//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(t *testing.T, checkIn, checkOut time.Time) booking.StayPeriod {
	t.Helper()
	s, err := booking.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return s
}

func activeBooking(t *testing.T, roomID uuid.UUID, status string, checkIn, checkOut time.Time) *booking.Booking {
	t.Helper()
	b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.RoomID = roomID
		b.Status = status
		b.CheckInDate = checkIn
		b.CheckOutDate = checkOut
	}).BuildDomain()
	require.NoError(t, err)
	return b
}

func testRoom(t *testing.T, price int64, maxGuests int) *room.Room {
	t.Helper()
	r, err := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
		b.PricePerNight = price
		b.MaxGuests = maxGuests
	}).BuildDomain()
	require.NoError(t, err)
	return r
}

func TestValidate(t *testing.T) {
	t.Run("empty room accepts any valid stay and prices per night", func(t *testing.T) {
		r := testRoom(t, 20000, 2)

		total, err := booking.Validate(r, stay(t, date(2026, 9, 1), date(2026, 9, 4)), 2, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(60000), total.Amount())
	})

	t.Run("back to back stays share the checkout day", func(t *testing.T) {
		r := testRoom(t, 20000, 2)
		existing := []*booking.Booking{
			activeBooking(t, r.ID(), "pending", date(2026, 9, 1), date(2026, 9, 6)),
		}

		// [1,6) then [6,9): the checkout day starts the next stay
		total, err := booking.Validate(r, stay(t, date(2026, 9, 6), date(2026, 9, 9)), 2, existing)

		require.NoError(t, err)
		assert.Equal(t, int64(60000), total.Amount())
	})

	t.Run("overlapping stay is rejected", func(t *testing.T) {
		r := testRoom(t, 20000, 2)
		existing := []*booking.Booking{
			activeBooking(t, r.ID(), "paid", date(2026, 9, 1), date(2026, 9, 6)),
		}

		_, err := booking.Validate(r, stay(t, date(2026, 9, 4), date(2026, 9, 8)), 2, existing)

		require.ErrorIs(t, err, booking.ErrRoomUnavailable)
	})

	t.Run("stay enclosing an existing booking is rejected", func(t *testing.T) {
		r := testRoom(t, 20000, 2)
		existing := []*booking.Booking{
			activeBooking(t, r.ID(), "pending", date(2026, 9, 3), date(2026, 9, 5)),
		}

		_, err := booking.Validate(r, stay(t, date(2026, 9, 1), date(2026, 9, 10)), 2, existing)

		require.ErrorIs(t, err, booking.ErrRoomUnavailable)
	})

	t.Run("cancelled booking releases its dates", func(t *testing.T) {
		r := testRoom(t, 20000, 2)
		existing := []*booking.Booking{
			activeBooking(t, r.ID(), "cancelled", date(2026, 9, 1), date(2026, 9, 6)),
		}

		total, err := booking.Validate(r, stay(t, date(2026, 9, 2), date(2026, 9, 4)), 2, existing)

		require.NoError(t, err)
		assert.Equal(t, int64(40000), total.Amount())
	})

	t.Run("other rooms never block the stay", func(t *testing.T) {
		r := testRoom(t, 20000, 2)
		existing := []*booking.Booking{
			activeBooking(t, uuid.New(), "paid", date(2026, 9, 1), date(2026, 9, 6)),
		}

		_, err := booking.Validate(r, stay(t, date(2026, 9, 2), date(2026, 9, 4)), 2, existing)

		require.NoError(t, err)
	})

	t.Run("guest count above capacity is rejected", func(t *testing.T) {
		r := testRoom(t, 20000, 2)

		_, err := booking.Validate(r, stay(t, date(2026, 9, 1), date(2026, 9, 4)), 3, nil)

		require.ErrorIs(t, err, booking.ErrTooManyGuests)
	})

	t.Run("single night stay", func(t *testing.T) {
		r := testRoom(t, 15000, 4)

		total, err := booking.Validate(r, stay(t, date(2026, 9, 1), date(2026, 9, 2)), 4, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(15000), total.Amount())
	})
}

func TestNewStayPeriod(t *testing.T) {
	t.Run("equal dates are rejected", func(t *testing.T) {
		_, err := booking.NewStayPeriod(date(2026, 9, 1), date(2026, 9, 1))
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("checkout before checkin is rejected", func(t *testing.T) {
		_, err := booking.NewStayPeriod(date(2026, 9, 5), date(2026, 9, 1))
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("time of day is truncated to the calendar date", func(t *testing.T) {
		checkIn := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
		checkOut := time.Date(2026, 9, 3, 8, 0, 0, 0, time.UTC)

		s, err := booking.NewStayPeriod(checkIn, checkOut)

		require.NoError(t, err)
		assert.Equal(t, date(2026, 9, 1), s.CheckIn())
		assert.Equal(t, date(2026, 9, 3), s.CheckOut())
		assert.Equal(t, 2, s.Nights())
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	base := stay(t, date(2026, 9, 5), date(2026, 9, 10))

	cases := []struct {
		name     string
		other    booking.StayPeriod
		overlaps bool
	}{
		{"identical range", stay(t, date(2026, 9, 5), date(2026, 9, 10)), true},
		{"starts inside", stay(t, date(2026, 9, 8), date(2026, 9, 12)), true},
		{"ends inside", stay(t, date(2026, 9, 3), date(2026, 9, 7)), true},
		{"encloses", stay(t, date(2026, 9, 1), date(2026, 9, 15)), true},
		{"enclosed", stay(t, date(2026, 9, 6), date(2026, 9, 8)), true},
		{"ends on check-in day", stay(t, date(2026, 9, 1), date(2026, 9, 5)), false},
		{"starts on check-out day", stay(t, date(2026, 9, 10), date(2026, 9, 14)), false},
		{"entirely before", stay(t, date(2026, 9, 1), date(2026, 9, 3)), false},
		{"entirely after", stay(t, date(2026, 9, 12), date(2026, 9, 14)), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, base.Overlaps(c.other))
			assert.Equal(t, c.overlaps, c.other.Overlaps(base))
		})
	}
}
