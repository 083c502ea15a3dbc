package commands

import (
	"context"

	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
)

var ErrEmailAlreadyUsed = errs.New("email address already registered")

type UserCommands interface {
	// Register creates a guest account. Staff roles are assigned out of band.
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error)
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (c *userCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(req.Phone)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := user.NewUser(email, hash, req.FullName, phone, user.RoleGuest)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyUsed
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.AuthorizedUserView{
		ID:       u.ID(),
		Email:    u.Email().String(),
		FullName: u.FullName(),
		Phone:    u.Phone().String(),
		Role:     u.Role().String(),
		IsActive: u.IsActive(),
	}, nil
}
