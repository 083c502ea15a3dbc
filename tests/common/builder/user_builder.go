//go:build unit || e2e

package builder

import (
	domuser "hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:    "guest@example.com",
		Password: "password123",
		FullName: "Test Guest",
		Phone:    "+77010000000",
		Role:     "guest",
		IsActive: true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	phone, err := domuser.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	role, err := domuser.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, "hashed-password", b.FullName, phone, role), nil
}

func (b *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    b.Email,
		Password: b.Password,
		FullName: b.FullName,
		Phone:    b.Phone,
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    b.Email,
		FullName: b.FullName,
		Phone:    b.Phone,
		Role:     b.Role,
		IsActive: b.IsActive,
	}
}
