package commands

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotPayable = errs.New("booking can no longer be paid")

	errTransactionIDCollision = errs.New("transaction id collision")
)

// maxTransactionIDAttempts bounds regeneration after a transaction id
// uniqueness collision. Collisions are vanishingly rare; one retry would
// already be generous.
const maxTransactionIDAttempts = 3

// PayResult distinguishes a fresh settlement from the benign replay of an
// already paid booking.
type PayResult struct {
	Payment        *queries.PaymentView
	AlreadySettled bool
}

type PaymentCommands interface {
	// Pay settles a pending booking through the mock provider: the payment
	// always succeeds, is recorded completed, and flips the booking to paid in
	// the same transaction. Paying a paid booking returns the existing payment.
	Pay(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID, req reqdto.PayBookingRequest) (*PayResult, error)
}

type paymentCommandsImpl struct {
	uow            shared.UnitOfWork
	paymentQueries queries.PaymentQueries
}

func NewPaymentCommands(uow shared.UnitOfWork, paymentQueries queries.PaymentQueries) PaymentCommands {
	return &paymentCommandsImpl{
		uow:            uow,
		paymentQueries: paymentQueries,
	}
}

func (c *paymentCommandsImpl) Pay(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID, req reqdto.PayBookingRequest) (*PayResult, error) {
	method, err := payment.NewMethod(req.Method)
	if err != nil {
		return nil, err
	}

	var alreadySettled bool
	for attempt := 0; ; attempt++ {
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			settled, txErr := c.settle(ctx, tx, actorID, actorRole, bookingID, method)
			if txErr != nil {
				return txErr
			}
			alreadySettled = settled
			return nil
		})
		if !errors.Is(err, errTransactionIDCollision) || attempt+1 >= maxTransactionIDAttempts {
			break
		}
	}
	if err != nil {
		if errors.Is(err, errTransactionIDCollision) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil, err
	}

	view, err := c.paymentQueries.GetByBookingIDSystem(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return &PayResult{Payment: view, AlreadySettled: alreadySettled}, nil
}

func (c *paymentCommandsImpl) settle(ctx context.Context, tx shared.Tx, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID, method payment.Method) (bool, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrBookingNotFound
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if b.UserID() != actorID && !actorRole.IsStaff() {
		return false, ErrBookingNotFound
	}

	if err := b.MarkPaid(); err != nil {
		if errors.Is(err, booking.ErrAlreadyPaid) {
			// Benign replay: the earlier payment stands, nothing is written.
			return true, nil
		}
		return false, errs.Tag(err, ErrBookingNotPayable)
	}

	p, err := payment.NewCompleted(b.ID(), b.TotalPrice(), method)
	if err != nil {
		return false, err
	}

	if _, err := tx.Payments().Create(ctx, p); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return false, errTransactionIDCollision
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return false, nil
}
