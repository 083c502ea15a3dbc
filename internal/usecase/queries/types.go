package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	RoomType      string    `json:"room_type"`
	PricePerNight int64     `json:"price_per_night"`
	MaxGuests     int       `json:"max_guests"`
	Description   string    `json:"description"`
	Amenities     string    `json:"amenities"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingView struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserEmail    string     `json:"user_email"`
	RoomID       uuid.UUID  `json:"room_id"`
	RoomNumber   string     `json:"room_number"`
	CheckInDate  time.Time  `json:"check_in_date"`
	CheckOutDate time.Time  `json:"check_out_date"`
	Guests       int        `json:"guests"`
	Status       string     `json:"status"`
	TotalPrice   int64      `json:"total_price"`
	ProcessedBy  *uuid.UUID `json:"processed_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   string    `json:"room_number"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Status       string    `json:"status"`
	TotalPrice   int64     `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"booking_id"`
	BookingUserID uuid.UUID `json:"-"`
	Amount        int64     `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone,omitempty"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// RoomFilters narrows room listings; nil fields are no-ops.
type RoomFilters struct {
	RoomType  *string
	MinGuests *int
}
