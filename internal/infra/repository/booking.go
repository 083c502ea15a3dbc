package repository

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const createBookingSQL = `
INSERT INTO bookings (id, user_id, room_id, check_in_date, check_out_date, guests, status, total_price, processed_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.UserID(),
		b.RoomID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Guests(),
		b.Status().String(),
		b.TotalPrice().Amount(),
		pgconv.UUIDPtrToPgtype(b.ProcessedBy()),
	).Scan(&id)
	if err != nil {
		// The gist exclusion constraint is the storage-level backstop against
		// double booking; the room row lock should make it unreachable.
		if pgErrCode(err) == pgErrCodeExclusionViolation {
			return uuid.Nil, infra.WrapRepoErr("booking dates overlap an active booking", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

const bookingColumns = `id, user_id, room_id, check_in_date, check_out_date, guests, status, total_price, processed_by, created_at, updated_at`

const findBookingForUpdateSQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
FOR UPDATE`

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, findBookingForUpdateSQL, id)

	entity, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for update", err)
	}

	return entity, nil
}

const activeBookingsByRoomSQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE room_id = $1 AND status IN ('pending', 'paid')
ORDER BY check_in_date`

func (r *BookingRepository) ActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, activeBookingsByRoomSQL, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $2, processed_by = $3, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL,
		b.ID(),
		b.Status().String(),
		pgconv.UUIDPtrToPgtype(b.ProcessedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, userID, roomID   uuid.UUID
		checkIn, checkOut    pgtype.Date
		guests               int
		statusStr            string
		totalPrice           int64
		processedBy          pgtype.UUID
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &userID, &roomID, &checkIn, &checkOut, &guests, &statusStr, &totalPrice, &processedBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	stay, err := booking.NewStayPeriod(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(statusStr)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id,
		userID,
		roomID,
		stay,
		guests,
		status,
		room.NewMoney(totalPrice),
		pgconv.UUIDPtrFromPgtype(processedBy),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
