package room

import (
	"time"

	"github.com/google/uuid"
)

// Room is catalog inventory. Immutable from the booking core's point of view:
// price changes never recompute totals of bookings already created.
type Room struct {
	id            uuid.UUID
	number        Number
	roomType      Type
	pricePerNight Money
	maxGuests     int
	description   string
	amenities     string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoom(number Number, roomType Type, pricePerNight Money, maxGuests int, description, amenities string) (*Room, error) {
	if !pricePerNight.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if maxGuests <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:            uuid.New(),
		number:        number,
		roomType:      roomType,
		pricePerNight: pricePerNight,
		maxGuests:     maxGuests,
		description:   description,
		amenities:     amenities,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number Number,
	roomType Type,
	pricePerNight Money,
	maxGuests int,
	description, amenities string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:            id,
		number:        number,
		roomType:      roomType,
		pricePerNight: pricePerNight,
		maxGuests:     maxGuests,
		description:   description,
		amenities:     amenities,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() Number       { return r.number }
func (r *Room) RoomType() Type       { return r.roomType }
func (r *Room) PricePerNight() Money { return r.pricePerNight }
func (r *Room) MaxGuests() int       { return r.maxGuests }
func (r *Room) Description() string  { return r.description }
func (r *Room) Amenities() string    { return r.amenities }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

func (r *Room) CanAccommodate(guests int) bool {
	return guests > 0 && guests <= r.maxGuests
}
