package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" || !emailPattern.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

// Phone numbers are stored as dialable digits with an optional leading plus.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

type Phone struct {
	value string
}

func NewPhone(value string) (Phone, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Phone{}, nil
	}
	if !phonePattern.MatchString(trimmed) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: trimmed}, nil
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) IsEmpty() bool {
	return p.value == ""
}

type Password struct {
	value string
}

func NewPassword(value string) (Password, error) {
	if value == "" {
		return Password{}, ErrEmptyPassword
	}
	if len(value) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: value}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email Email, password Password) Credentials {
	return Credentials{email: email, password: password}
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}
