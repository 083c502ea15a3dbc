package commands

import (
	"context"

	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateRoomNumber = errs.New("room number already exists")

type RoomCommands interface {
	CreateRoom(ctx context.Context, req reqdto.CreateRoomRequest) (*queries.RoomView, error)
	// UpdateRoom replaces catalog attributes. Totals of existing bookings keep
	// the price they were created with.
	UpdateRoom(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) (*queries.RoomView, error)
}

type roomCommandsImpl struct {
	uow         shared.UnitOfWork
	roomQueries queries.RoomQueries
}

func NewRoomCommands(uow shared.UnitOfWork, roomQueries queries.RoomQueries) RoomCommands {
	return &roomCommandsImpl{
		uow:         uow,
		roomQueries: roomQueries,
	}
}

func (c *roomCommandsImpl) CreateRoom(ctx context.Context, req reqdto.CreateRoomRequest) (*queries.RoomView, error) {
	rm, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	var roomID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Rooms().Create(ctx, rm)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		roomID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.roomQueries.GetByID(ctx, roomID)
}

func (c *roomCommandsImpl) UpdateRoom(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) (*queries.RoomView, error) {
	number, err := room.NewNumber(req.Number)
	if err != nil {
		return nil, err
	}
	roomType, err := room.NewType(req.RoomType)
	if err != nil {
		return nil, err
	}
	price := room.NewMoney(req.PricePerNight)
	if !price.IsPositive() {
		return nil, room.ErrInvalidPrice
	}
	if req.MaxGuests <= 0 {
		return nil, room.ErrInvalidCapacity
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Rooms().FindByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		updated := room.ReconstructRoom(
			current.ID(),
			number,
			roomType,
			price,
			req.MaxGuests,
			req.Description,
			req.Amenities,
			current.CreatedAt(),
			current.UpdatedAt(),
		)
		if err := tx.Rooms().Update(ctx, updated); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
			}
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.roomQueries.GetByID(ctx, id)
}
