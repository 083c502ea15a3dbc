package repository

import (
	"context"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

const createRoomSQL = `
INSERT INTO rooms (id, number, room_type, price_per_night, max_guests, description, amenities)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *RoomRepository) Create(ctx context.Context, entity *room.Room) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createRoomSQL,
		entity.ID(),
		entity.Number().String(),
		entity.RoomType().String(),
		entity.PricePerNight().Amount(),
		entity.MaxGuests(),
		entity.Description(),
		entity.Amenities(),
	).Scan(&id)
	if err != nil {
		if pgErrCode(err) == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("room number already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}

	return id, nil
}

const updateRoomSQL = `
UPDATE rooms
SET number = $2, room_type = $3, price_per_night = $4, max_guests = $5,
    description = $6, amenities = $7, updated_at = now()
WHERE id = $1`

func (r *RoomRepository) Update(ctx context.Context, entity *room.Room) error {
	tag, err := r.db.Exec(ctx, updateRoomSQL,
		entity.ID(),
		entity.Number().String(),
		entity.RoomType().String(),
		entity.PricePerNight().Amount(),
		entity.MaxGuests(),
		entity.Description(),
		entity.Amenities(),
	)
	if err != nil {
		if pgErrCode(err) == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("room number already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

const findRoomForUpdateSQL = `
SELECT id, number, room_type, price_per_night, max_guests, description, amenities, created_at, updated_at
FROM rooms
WHERE id = $1
FOR UPDATE`

func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row := r.db.QueryRow(ctx, findRoomForUpdateSQL, id)

	entity, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room for update", err)
	}

	return entity, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*room.Room, error) {
	var (
		id                     uuid.UUID
		numberStr              string
		roomTypeStr            string
		price                  int64
		maxGuests              int
		description, amenities string
		createdAt, updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(&id, &numberStr, &roomTypeStr, &price, &maxGuests, &description, &amenities, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	number, err := room.NewNumber(numberStr)
	if err != nil {
		return nil, err
	}
	roomType, err := room.NewType(roomTypeStr)
	if err != nil {
		return nil, err
	}

	return room.ReconstructRoom(
		id,
		number,
		roomType,
		room.NewMoney(price),
		maxGuests,
		description,
		amenities,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
