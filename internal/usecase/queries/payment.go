package queries

import (
	"context"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPaymentNotFound = errs.New("payment not found")

type PaymentQueries interface {
	GetByBookingID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*PaymentView, error)
	GetByBookingIDSystem(ctx context.Context, bookingID uuid.UUID) (*PaymentView, error)
}

type PaymentReadStore interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) GetByBookingID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*PaymentView, error) {
	view, err := q.GetByBookingIDSystem(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if view.BookingUserID != actorID && !actorRole.IsStaff() {
		return nil, ErrPaymentNotFound
	}

	return view, nil
}

func (q *paymentQueriesImpl) GetByBookingIDSystem(ctx context.Context, bookingID uuid.UUID) (*PaymentView, error) {
	view, err := q.store.FindByBookingID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return view, nil
}
