package readstore

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomViewColumns = `id, number, room_type, price_per_night, max_guests, description, amenities, created_at, updated_at`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomViewColumns+` FROM rooms WHERE id = $1`, id)

	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	return view, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context, filters queries.RoomFilters) ([]*queries.RoomView, error) {
	sql := `SELECT ` + roomViewColumns + ` FROM rooms WHERE true`
	args := []any{}
	sql, args = applyRoomFilters(sql, args, filters)
	sql += ` ORDER BY number`

	return r.queryRoomViews(ctx, sql, args)
}

// The NOT EXISTS subquery is the availability derivation: a room is excluded
// when any pending/paid booking overlaps the half-open [checkIn, checkOut).
const availableRoomsSQL = `
SELECT ` + roomViewColumns + `
FROM rooms r
WHERE NOT EXISTS (
    SELECT 1
    FROM bookings b
    WHERE b.room_id = r.id
      AND b.status IN ('pending', 'paid')
      AND b.check_in_date < $2
      AND b.check_out_date > $1
)`

func (r *RoomReadStore) FindAvailable(ctx context.Context, checkIn, checkOut time.Time, filters queries.RoomFilters) ([]*queries.RoomView, error) {
	sql := availableRoomsSQL
	args := []any{pgconv.DateToPgtype(checkIn), pgconv.DateToPgtype(checkOut)}
	sql, args = applyRoomFilters(sql, args, filters)
	sql += ` ORDER BY number`

	return r.queryRoomViews(ctx, sql, args)
}

func applyRoomFilters(sql string, args []any, filters queries.RoomFilters) (string, []any) {
	if filters.RoomType != nil {
		args = append(args, *filters.RoomType)
		sql += fmt.Sprintf(` AND room_type = $%d`, len(args))
	}
	if filters.MinGuests != nil {
		args = append(args, *filters.MinGuests)
		sql += fmt.Sprintf(` AND max_guests >= $%d`, len(args))
	}
	return sql, args
}

func (r *RoomReadStore) queryRoomViews(ctx context.Context, sql string, args []any) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	result := []*queries.RoomView{}
	for rows.Next() {
		view, scanErr := scanRoomView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomView(row rowScanner) (*queries.RoomView, error) {
	var (
		view                 queries.RoomView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.Number,
		&view.RoomType,
		&view.PricePerNight,
		&view.MaxGuests,
		&view.Description,
		&view.Amenities,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
