package request

import (
	"time"

	"hotel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Dates arrive as plain calendar days; the datetime tag rejects anything that
// is not 2006-01-02 before the domain sees it.
type CreateBookingRequest struct {
	RoomID       uuid.UUID `json:"room_id" binding:"required"`
	CheckInDate  string    `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate string    `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	Guests       int       `json:"guests" binding:"required,gt=0"`
}

func (r *CreateBookingRequest) Stay() (booking.StayPeriod, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckInDate)
	if err != nil {
		return booking.StayPeriod{}, booking.ErrInvalidDateRange
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOutDate)
	if err != nil {
		return booking.StayPeriod{}, booking.ErrInvalidDateRange
	}
	return booking.NewStayPeriod(checkIn, checkOut)
}
