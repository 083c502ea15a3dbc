package booking

import (
	"hotel-booking/internal/domain/room"
)

// Validate is the pure acceptance check for a requested stay: capacity, then
// overlap against the room's bookings that are still active, then price.
// It has no side effects; the caller must re-run it inside the same
// transaction that persists the booking, so the last check is authoritative.
func Validate(r *room.Room, stay StayPeriod, guests int, existing []*Booking) (room.Money, error) {
	if !r.CanAccommodate(guests) {
		return room.Money{}, ErrTooManyGuests
	}

	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		if b.RoomID() != r.ID() {
			continue
		}
		if stay.Overlaps(b.Stay()) {
			return room.Money{}, ErrRoomUnavailable
		}
	}

	return r.PricePerNight().MulNights(stay.Nights()), nil
}
