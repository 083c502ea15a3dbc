//go:build unit

package booking_test

import (
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingWithStatus(t *testing.T, status string) *booking.Booking {
	t.Helper()
	b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = status
	}).BuildDomain()
	require.NoError(t, err)
	return b
}

func TestBookingMarkPaid(t *testing.T) {
	t.Run("pending becomes paid", func(t *testing.T) {
		b := bookingWithStatus(t, "pending")

		require.NoError(t, b.MarkPaid())
		assert.Equal(t, booking.StatusPaid, b.Status())
	})

	t.Run("paying twice reports already paid", func(t *testing.T) {
		b := bookingWithStatus(t, "paid")

		err := b.MarkPaid()

		require.ErrorIs(t, err, booking.ErrAlreadyPaid)
		assert.Equal(t, booking.StatusPaid, b.Status())
	})

	t.Run("cancelled booking cannot be paid", func(t *testing.T) {
		b := bookingWithStatus(t, "cancelled")

		err := b.MarkPaid()

		require.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})
}

func TestBookingCancel(t *testing.T) {
	t.Run("pending can be cancelled", func(t *testing.T) {
		b := bookingWithStatus(t, "pending")

		require.NoError(t, b.Cancel(nil))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Nil(t, b.ProcessedBy())
	})

	t.Run("paid can be cancelled by staff", func(t *testing.T) {
		b := bookingWithStatus(t, "paid")
		staffID := uuid.New()

		require.NoError(t, b.Cancel(&staffID))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.ProcessedBy())
		assert.Equal(t, staffID, *b.ProcessedBy())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b := bookingWithStatus(t, "cancelled")

		err := b.Cancel(nil)

		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{booking.StatusPending, booking.StatusPaid, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPaid, booking.StatusCancelled, true},
		{booking.StatusPaid, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusPaid, false},
	}

	for _, c := range cases {
		t.Run(string(c.from)+" to "+string(c.to), func(t *testing.T) {
			assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to))
		})
	}
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, booking.StatusPending.IsActive())
	assert.True(t, booking.StatusPaid.IsActive())
	assert.False(t, booking.StatusCancelled.IsActive())
}

func TestNewStatus(t *testing.T) {
	_, err := booking.NewStatus("confirmed")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}
