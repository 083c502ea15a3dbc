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

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

func (s *PaymentReadStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*queries.PaymentView, error) {
	row := s.db.QueryRow(ctx, `
SELECT p.id, p.booking_id, b.user_id, p.amount, p.transaction_id,
       p.method, p.status, p.created_at
FROM payments p
JOIN bookings b ON b.id = p.booking_id
WHERE p.booking_id = $1`, bookingID)

	var (
		view      queries.PaymentView
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.BookingID,
		&view.BookingUserID,
		&view.Amount,
		&view.TransactionID,
		&view.Method,
		&view.Status,
		&createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by booking ID", err)
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
