//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hotel-booking/internal/domain/booking"
	domroom "hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID       uuid.UUID
	UserEmail    string
	RoomID       uuid.UUID
	RoomNumber   string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Guests       int
	Status       string
	TotalPrice   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		UserID:       uuid.New(),
		UserEmail:    "guest@example.com",
		RoomID:       uuid.New(),
		RoomNumber:   "101",
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 3),
		Guests:       2,
		Status:       "pending",
		TotalPrice:   60000,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := dombooking.NewStayPeriod(b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return nil, err
	}
	status, err := dombooking.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return dombooking.ReconstructBooking(
		uuid.New(),
		b.UserID,
		b.RoomID,
		stay,
		b.Guests,
		status,
		domroom.NewMoney(b.TotalPrice),
		nil,
		b.CreatedAt,
		b.UpdatedAt,
	), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:       b.RoomID,
		CheckInDate:  b.CheckInDate.Format(time.DateOnly),
		CheckOutDate: b.CheckOutDate.Format(time.DateOnly),
		Guests:       b.Guests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		UserID:       b.UserID,
		UserEmail:    b.UserEmail,
		RoomID:       b.RoomID,
		RoomNumber:   b.RoomNumber,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Guests:       b.Guests,
		Status:       b.Status,
		TotalPrice:   b.TotalPrice,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
