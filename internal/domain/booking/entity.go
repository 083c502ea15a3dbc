package booking

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/room"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange  = errors.New("check-out date must be after check-in date")
	ErrRoomUnavailable   = errors.New("room is unavailable for the requested dates")
	ErrTooManyGuests     = errors.New("guest count exceeds room capacity")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrAlreadyPaid       = errors.New("booking is already paid")
	ErrInvalidStatus     = errors.New("invalid booking status")
)

type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	roomID      uuid.UUID
	stay        StayPeriod
	guests      int
	status      Status
	totalPrice  room.Money
	processedBy *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking produces a pending booking. Callers must have run Validate against
// the room's active bookings first; the total price is the validator's result.
func NewBooking(userID, roomID uuid.UUID, stay StayPeriod, guests int, totalPrice room.Money) *Booking {
	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		roomID:     roomID,
		stay:       stay,
		guests:     guests,
		status:     StatusPending,
		totalPrice: totalPrice,
	}
}

func ReconstructBooking(
	id, userID, roomID uuid.UUID,
	stay StayPeriod,
	guests int,
	status Status,
	totalPrice room.Money,
	processedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		roomID:      roomID,
		stay:        stay,
		guests:      guests,
		status:      status,
		totalPrice:  totalPrice,
		processedBy: processedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// MarkPaid transitions pending to paid. An already paid booking reports
// ErrAlreadyPaid so callers can treat repeated payment as a benign no-op
// instead of a failure.
func (b *Booking) MarkPaid() error {
	switch b.status {
	case StatusPaid:
		return ErrAlreadyPaid
	case StatusPending:
		b.status = StatusPaid
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Cancel releases the booked dates. Allowed from pending and, as an
// administrative override, from paid. Nothing leaves cancelled.
func (b *Booking) Cancel(processedBy *uuid.UUID) error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.processedBy = processedBy
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) RoomID() uuid.UUID      { return b.roomID }
func (b *Booking) Stay() StayPeriod       { return b.stay }
func (b *Booking) Guests() int            { return b.guests }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) TotalPrice() room.Money { return b.totalPrice }
func (b *Booking) ProcessedBy() *uuid.UUID {
	return b.processedBy
}
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
