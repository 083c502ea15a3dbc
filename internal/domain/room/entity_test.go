//go:build unit

package room_test

import (
	"testing"

	"hotel-booking/internal/domain/room"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomCase struct {
	name   string
	mutate func(*builder.RoomBuilder)
	errIs  error
}

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()

		require.NoError(t, err)
		assert.Equal(t, "101", r.Number().String())
		assert.Equal(t, room.TypeDouble, r.RoomType())
		assert.Equal(t, int64(20000), r.PricePerNight().Amount())
		assert.Equal(t, 2, r.MaxGuests())
	})

	t.Run("validation", func(t *testing.T) {
		runRoomCases(t, []roomCase{
			{
				name:   "empty number",
				mutate: func(b *builder.RoomBuilder) { b.Number = "  " },
				errIs:  room.ErrEmptyNumber,
			},
			{
				name:   "unknown room type",
				mutate: func(b *builder.RoomBuilder) { b.RoomType = "penthouse" },
				errIs:  room.ErrInvalidRoomType,
			},
			{
				name:   "zero price",
				mutate: func(b *builder.RoomBuilder) { b.PricePerNight = 0 },
				errIs:  room.ErrInvalidPrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.RoomBuilder) { b.PricePerNight = -100 },
				errIs:  room.ErrInvalidPrice,
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.RoomBuilder) { b.MaxGuests = 0 },
				errIs:  room.ErrInvalidCapacity,
			},
			{
				name:   "suite type",
				mutate: func(b *builder.RoomBuilder) { b.RoomType = "suite" },
			},
		})
	})
}

func runRoomCases(t *testing.T, cases []roomCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRoomBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestCanAccommodate(t *testing.T) {
	r, err := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
		b.MaxGuests = 3
	}).BuildDomain()
	require.NoError(t, err)

	assert.True(t, r.CanAccommodate(1))
	assert.True(t, r.CanAccommodate(3))
	assert.False(t, r.CanAccommodate(4))
	assert.False(t, r.CanAccommodate(0))
	assert.False(t, r.CanAccommodate(-1))
}

func TestMoney(t *testing.T) {
	price := room.NewMoney(20000)

	assert.Equal(t, int64(100000), price.MulNights(5).Amount())
	assert.True(t, price.IsPositive())
	assert.False(t, room.NewMoney(0).IsPositive())
	assert.True(t, price.Equal(room.NewMoney(20000)))
	assert.Equal(t, "20000 KZT", price.String())
}
