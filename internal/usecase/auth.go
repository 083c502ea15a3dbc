package usecase

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	users      queries.UserReadStore
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthUseCase(users queries.UserReadStore, uow shared.UnitOfWork, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error) {
	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		return "", nil, err
	}

	return token, view, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.users.FindByEmail(ctx, credentials.Email())
	if err != nil {
		// Not distinguished from a bad password so addresses cannot be probed
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
