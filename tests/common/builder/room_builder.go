//go:build unit || e2e

package builder

import (
	"time"

	domroom "hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	Number        string
	RoomType      string
	PricePerNight int64
	MaxGuests     int
	Description   string
	Amenities     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		Number:        "101",
		RoomType:      "double",
		PricePerNight: 20000,
		MaxGuests:     2,
		Description:   "Standard double room",
		Amenities:     "wifi,tv",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	number, err := domroom.NewNumber(b.Number)
	if err != nil {
		return nil, err
	}
	roomType, err := domroom.NewType(b.RoomType)
	if err != nil {
		return nil, err
	}
	return domroom.NewRoom(number, roomType, domroom.NewMoney(b.PricePerNight), b.MaxGuests, b.Description, b.Amenities)
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Number:        b.Number,
		RoomType:      b.RoomType,
		PricePerNight: b.PricePerNight,
		MaxGuests:     b.MaxGuests,
		Description:   b.Description,
		Amenities:     b.Amenities,
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:            uuid.New(),
		Number:        b.Number,
		RoomType:      b.RoomType,
		PricePerNight: b.PricePerNight,
		MaxGuests:     b.MaxGuests,
		Description:   b.Description,
		Amenities:     b.Amenities,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
