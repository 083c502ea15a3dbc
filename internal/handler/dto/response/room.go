package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	RoomType      string    `json:"roomType"`
	PricePerNight int64     `json:"pricePerNight"`
	MaxGuests     int       `json:"maxGuests"`
	Description   string    `json:"description,omitempty"`
	Amenities     string    `json:"amenities,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(views))
	for i, v := range views {
		result[i] = FromRoomView(v)
	}
	return result
}
