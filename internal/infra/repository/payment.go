package repository

import (
	"context"

	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

const createPaymentSQL = `
INSERT INTO payments (id, booking_id, amount, transaction_id, method, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createPaymentSQL,
		p.ID(),
		p.BookingID(),
		p.Amount().Amount(),
		p.TransactionID(),
		p.Method().String(),
		p.Status().String(),
	).Scan(&id)
	if err != nil {
		if pgErrCode(err) == pgErrCodeUniqueViolation {
			// transaction_id collision is retried with a fresh token; a second
			// payment for the same booking is a conflict, never retried.
			if pgConstraint(err) == "payments_transaction_id_key" {
				return uuid.Nil, infra.WrapRepoErr("transaction id collision", err, infra.KindDuplicateKey)
			}
			return uuid.Nil, infra.WrapRepoErr("payment already exists for booking", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}

	return id, nil
}

const findPaymentByBookingSQL = `
SELECT id, booking_id, amount, transaction_id, method, status, created_at
FROM payments
WHERE booking_id = $1`

func (r *PaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	row := r.db.QueryRow(ctx, findPaymentByBookingSQL, bookingID)

	var (
		id, bID       uuid.UUID
		amount        int64
		transactionID string
		methodStr     string
		statusStr     string
		createdAt     pgtype.Timestamptz
	)
	if err := row.Scan(&id, &bID, &amount, &transactionID, &methodStr, &statusStr, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by booking", err)
	}

	method, err := payment.NewMethod(methodStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid payment method in storage", err)
	}

	return payment.ReconstructPayment(
		id,
		bID,
		room.NewMoney(amount),
		transactionID,
		method,
		payment.Status(statusStr),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
