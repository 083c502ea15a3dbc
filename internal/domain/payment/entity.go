package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/domain/room"

	"github.com/google/uuid"
)

var ErrUnsupportedMethod = errors.New("unsupported payment method")

// Payment is the record of one simulated transaction. Exactly one payment may
// exist per booking, and a completed payment implies the booking is paid.
type Payment struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	amount        room.Money
	transactionID string
	method        Method
	status        Status
	createdAt     time.Time
}

// NewCompleted builds the always-succeeding mock payment: status is completed
// from the start and the transaction id is a fresh opaque token. Uniqueness is
// still enforced at the storage layer; on collision the caller regenerates.
func NewCompleted(bookingID uuid.UUID, amount room.Money, method Method) (*Payment, error) {
	if !method.IsValid() {
		return nil, ErrUnsupportedMethod
	}

	return &Payment{
		id:            uuid.New(),
		bookingID:     bookingID,
		amount:        amount,
		transactionID: NewTransactionID(method),
		method:        method,
		status:        StatusCompleted,
	}, nil
}

func ReconstructPayment(
	id, bookingID uuid.UUID,
	amount room.Money,
	transactionID string,
	method Method,
	status Status,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		bookingID:     bookingID,
		amount:        amount,
		transactionID: transactionID,
		method:        method,
		status:        status,
		createdAt:     createdAt,
	}
}

// RegenerateTransactionID replaces the token after a storage-level uniqueness
// collision.
func (p *Payment) RegenerateTransactionID() {
	p.transactionID = NewTransactionID(p.method)
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) Amount() room.Money    { return p.amount }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) Method() Method        { return p.method }
func (p *Payment) Status() Status        { return p.status }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }

// NewTransactionID builds tokens like MOCK-KASPI-1f9a3c02bd.
func NewTransactionID(method Method) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
	return fmt.Sprintf("MOCK-%s-%s", strings.ToUpper(method.String()), token)
}
