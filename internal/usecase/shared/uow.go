package shared

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Users() UserRepository
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, r *room.Room) error
	// FindByIDForUpdate locks the room row; booking creation serializes on it
	// so that the overlap check and insert act as one atomic step per room.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// ActiveByRoomID returns the room's bookings in status pending or paid.
	ActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (uuid.UUID, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
