package commands

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	// CreateBooking validates the stay against the room's active bookings and
	// inserts atomically; the room row lock serializes concurrent attempts.
	CreateBooking(ctx context.Context, userID uuid.UUID, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	// CancelBooking releases the booked dates. Guests may cancel their own
	// bookings; staff may cancel any and are recorded as the processor.
	CancelBooking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, userID uuid.UUID, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	stay, err := req.Stay()
	if err != nil {
		return nil, err
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, req.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		active, err := tx.Bookings().ActiveByRoomID(ctx, rm.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		total, err := booking.Validate(rm, stay, req.Guests, active)
		if err != nil {
			return err
		}

		b := booking.NewBooking(userID, rm.ID(), stay, req.Guests, total)
		id, err := tx.Bookings().Create(ctx, b)
		if err != nil {
			// The exclusion constraint is the backstop for overlaps the lock
			// did not serialize.
			if infra.IsKind(err, infra.KindConflict) {
				return booking.ErrRoomUnavailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		isOwner := b.UserID() == actorID
		if !isOwner && !actorRole.IsStaff() {
			// Masked so booking ids cannot be probed
			return ErrBookingNotFound
		}

		var processedBy *uuid.UUID
		if actorRole.IsStaff() && !isOwner {
			processedBy = &actorID
		}

		if err := b.Cancel(processedBy); err != nil {
			return err
		}

		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}
