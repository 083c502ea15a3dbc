package request

import (
	"hotel-booking/internal/domain/room"
)

type CreateRoomRequest struct {
	Number        string `json:"number" binding:"required"`
	RoomType      string `json:"room_type" binding:"required"`
	PricePerNight int64  `json:"price_per_night" binding:"required,gt=0"`
	MaxGuests     int    `json:"max_guests" binding:"required,gt=0"`
	Description   string `json:"description,omitempty"`
	Amenities     string `json:"amenities,omitempty"`
}

func (r *CreateRoomRequest) ToDomain() (*room.Room, error) {
	number, err := room.NewNumber(r.Number)
	if err != nil {
		return nil, err
	}
	roomType, err := room.NewType(r.RoomType)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(number, roomType, room.NewMoney(r.PricePerNight), r.MaxGuests, r.Description, r.Amenities)
}

type UpdateRoomRequest struct {
	Number        string `json:"number" binding:"required"`
	RoomType      string `json:"room_type" binding:"required"`
	PricePerNight int64  `json:"price_per_night" binding:"required,gt=0"`
	MaxGuests     int    `json:"max_guests" binding:"required,gt=0"`
	Description   string `json:"description,omitempty"`
	Amenities     string `json:"amenities,omitempty"`
}
