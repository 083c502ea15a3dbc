package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	UserEmail    string     `json:"userEmail"`
	RoomID       uuid.UUID  `json:"roomId"`
	RoomNumber   string     `json:"roomNumber"`
	CheckInDate  string     `json:"checkInDate"`
	CheckOutDate string     `json:"checkOutDate"`
	Guests       int        `json:"guests"`
	Status       string     `json:"status"`
	TotalPrice   int64      `json:"totalPrice"`
	ProcessedBy  *uuid.UUID `json:"processedBy,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	Status       string    `json:"status"`
	TotalPrice   int64     `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	resp.CheckInDate = view.CheckInDate.Format(time.DateOnly)
	resp.CheckOutDate = view.CheckOutDate.Format(time.DateOnly)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, v := range views {
		result[i] = FromBookingView(v)
	}
	return result
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, item)
	resp.CheckInDate = item.CheckInDate.Format(time.DateOnly)
	resp.CheckOutDate = item.CheckOutDate.Format(time.DateOnly)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	result := make([]*BookingListResponse, len(items))
	for i, item := range items {
		result[i] = FromBookingListItem(item)
	}
	return result
}
