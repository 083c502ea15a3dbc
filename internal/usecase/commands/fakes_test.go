//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory stand-ins for the persistence layer. Each fake mirrors the error
// kinds the real repositories produce so command error mapping is exercised.

type fakeState struct {
	rooms    map[uuid.UUID]*room.Room
	bookings map[uuid.UUID]*booking.Booking
	payments map[uuid.UUID]*payment.Payment // keyed by booking id
	users    map[uuid.UUID]*user.User

	// failPaymentCreates makes the next n payment inserts fail as
	// transaction id collisions.
	failPaymentCreates int
}

func newFakeState() *fakeState {
	return &fakeState{
		rooms:    map[uuid.UUID]*room.Room{},
		bookings: map[uuid.UUID]*booking.Booking{},
		payments: map[uuid.UUID]*payment.Payment{},
		users:    map[uuid.UUID]*user.User{},
	}
}

type fakeUoW struct {
	state *fakeState
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{state: u.state})
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Rooms() shared.RoomRepository       { return &fakeRoomRepo{state: t.state} }
func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{state: t.state} }
func (t *fakeTx) Payments() shared.PaymentRepository { return &fakePaymentRepo{state: t.state} }
func (t *fakeTx) Users() shared.UserRepository       { return &fakeUserRepo{state: t.state} }

type fakeRoomRepo struct {
	state *fakeState
}

func (r *fakeRoomRepo) Create(_ context.Context, rm *room.Room) (uuid.UUID, error) {
	for _, existing := range r.state.rooms {
		if existing.Number() == rm.Number() {
			return uuid.Nil, infra.WrapRepoErr("duplicate room number", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	r.state.rooms[rm.ID()] = rm
	return rm.ID(), nil
}

func (r *fakeRoomRepo) Update(_ context.Context, rm *room.Room) error {
	if _, ok := r.state.rooms[rm.ID()]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	r.state.rooms[rm.ID()] = rm
	return nil
}

func (r *fakeRoomRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.state.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return rm, nil
}

type fakeBookingRepo struct {
	state *fakeState
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	r.state.bookings[b.ID()] = b
	return b.ID(), nil
}

// FindByIDForUpdate returns a copy: like a rolled back transaction, entity
// mutations only stick once UpdateStatus persists them.
func (r *fakeBookingRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.state.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return booking.ReconstructBooking(
		b.ID(), b.UserID(), b.RoomID(),
		b.Stay(), b.Guests(), b.Status(), b.TotalPrice(),
		b.ProcessedBy(), b.CreatedAt(), b.UpdatedAt(),
	), nil
}

func (r *fakeBookingRepo) ActiveByRoomID(_ context.Context, roomID uuid.UUID) ([]*booking.Booking, error) {
	var result []*booking.Booking
	for _, b := range r.state.bookings {
		if b.RoomID() == roomID && b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	if _, ok := r.state.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.state.bookings[b.ID()] = b
	return nil
}

type fakePaymentRepo struct {
	state *fakeState
}

func (r *fakePaymentRepo) Create(_ context.Context, p *payment.Payment) (uuid.UUID, error) {
	if r.state.failPaymentCreates > 0 {
		r.state.failPaymentCreates--
		return uuid.Nil, infra.WrapRepoErr("transaction id collision", errors.New("unique violation"), infra.KindDuplicateKey)
	}
	if _, ok := r.state.payments[p.BookingID()]; ok {
		return uuid.Nil, infra.WrapRepoErr("payment already exists for booking", errors.New("unique violation"), infra.KindConflict)
	}
	r.state.payments[p.BookingID()] = p
	return p.ID(), nil
}

func (r *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	p, ok := r.state.payments[bookingID]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return p, nil
}

type fakeUserRepo struct {
	state *fakeState
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.state.users {
		if existing.Email() == u.Email() {
			return uuid.Nil, infra.WrapRepoErr("email already registered", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	r.state.users[u.ID()] = u
	return u.ID(), nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID) error {
	return nil
}

// Read stores derive views straight from the fake state so the real query
// implementations can run on top of them.

type fakeBookingReadStore struct {
	state *fakeState
}

func (s *fakeBookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, ok := s.state.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return bookingViewOf(b), nil
}

func (s *fakeBookingReadStore) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	var result []*queries.BookingListItem
	for _, b := range s.state.bookings {
		if b.UserID() != userID {
			continue
		}
		result = append(result, &queries.BookingListItem{
			ID:           b.ID(),
			RoomID:       b.RoomID(),
			CheckInDate:  b.Stay().CheckIn(),
			CheckOutDate: b.Stay().CheckOut(),
			Status:       b.Status().String(),
			TotalPrice:   b.TotalPrice().Amount(),
			CreatedAt:    b.CreatedAt(),
		})
	}
	return result, nil
}

func (s *fakeBookingReadStore) FindAll(_ context.Context, status *string) ([]*queries.BookingView, error) {
	var result []*queries.BookingView
	for _, b := range s.state.bookings {
		if status != nil && b.Status().String() != *status {
			continue
		}
		result = append(result, bookingViewOf(b))
	}
	return result, nil
}

func bookingViewOf(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID(),
		UserID:       b.UserID(),
		RoomID:       b.RoomID(),
		CheckInDate:  b.Stay().CheckIn(),
		CheckOutDate: b.Stay().CheckOut(),
		Guests:       b.Guests(),
		Status:       b.Status().String(),
		TotalPrice:   b.TotalPrice().Amount(),
		ProcessedBy:  b.ProcessedBy(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
}

type fakePaymentReadStore struct {
	state *fakeState
}

func (s *fakePaymentReadStore) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*queries.PaymentView, error) {
	p, ok := s.state.payments[bookingID]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	view := &queries.PaymentView{
		ID:            p.ID(),
		BookingID:     p.BookingID(),
		Amount:        p.Amount().Amount(),
		TransactionID: p.TransactionID(),
		Method:        p.Method().String(),
		Status:        p.Status().String(),
		CreatedAt:     p.CreatedAt(),
	}
	if b, ok := s.state.bookings[bookingID]; ok {
		view.BookingUserID = b.UserID()
	}
	return view, nil
}

type fakeRoomReadStore struct {
	state *fakeState
}

func (s *fakeRoomReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	rm, ok := s.state.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return roomViewOf(rm), nil
}

func (s *fakeRoomReadStore) FindAll(_ context.Context, _ queries.RoomFilters) ([]*queries.RoomView, error) {
	result := []*queries.RoomView{}
	for _, rm := range s.state.rooms {
		result = append(result, roomViewOf(rm))
	}
	return result, nil
}

func (s *fakeRoomReadStore) FindAvailable(_ context.Context, _, _ time.Time, _ queries.RoomFilters) ([]*queries.RoomView, error) {
	return nil, nil
}

func roomViewOf(rm *room.Room) *queries.RoomView {
	return &queries.RoomView{
		ID:            rm.ID(),
		Number:        rm.Number().String(),
		RoomType:      rm.RoomType().String(),
		PricePerNight: rm.PricePerNight().Amount(),
		MaxGuests:     rm.MaxGuests(),
		Description:   rm.Description(),
		Amenities:     rm.Amenities(),
		CreatedAt:     rm.CreatedAt(),
		UpdatedAt:     rm.UpdatedAt(),
	}
}
