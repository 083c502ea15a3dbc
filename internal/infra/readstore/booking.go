package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.user_id, u.email, b.room_id, r.number,
       b.check_in_date, b.check_out_date, b.guests, b.status,
       b.total_price, b.processed_by, b.created_at, b.updated_at
FROM bookings b
JOIN users u ON u.id = b.user_id
JOIN rooms r ON r.id = b.room_id`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, bookingViewSQL+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, `
SELECT b.id, b.room_id, r.number, b.check_in_date, b.check_out_date,
       b.status, b.total_price, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings by user", err)
	}
	defer rows.Close()

	result := []*queries.BookingListItem{}
	for rows.Next() {
		var (
			item              queries.BookingListItem
			checkIn, checkOut pgtype.Date
			createdAt         pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID,
			&item.RoomID,
			&item.RoomNumber,
			&checkIn,
			&checkOut,
			&item.Status,
			&item.TotalPrice,
			&createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.CheckInDate = pgconv.DateFromPgtype(checkIn)
		item.CheckOutDate = pgconv.DateFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

func (s *BookingReadStore) FindAll(ctx context.Context, status *string) ([]*queries.BookingView, error) {
	sql := bookingViewSQL
	args := []any{}
	if status != nil {
		sql += ` WHERE b.status = $1`
		args = append(args, *status)
	}
	sql += ` ORDER BY b.created_at DESC`

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	result := []*queries.BookingView{}
	for rows.Next() {
		view, scanErr := scanBookingView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		view                 queries.BookingView
		checkIn, checkOut    pgtype.Date
		processedBy          pgtype.UUID
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.UserID,
		&view.UserEmail,
		&view.RoomID,
		&view.RoomNumber,
		&checkIn,
		&checkOut,
		&view.Guests,
		&view.Status,
		&view.TotalPrice,
		&processedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.CheckInDate = pgconv.DateFromPgtype(checkIn)
	view.CheckOutDate = pgconv.DateFromPgtype(checkOut)
	view.ProcessedBy = pgconv.UUIDPtrFromPgtype(processedBy)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
