package room

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRoomType = errors.New("invalid room type")
	ErrInvalidPrice    = errors.New("nightly price must be positive")
	ErrInvalidCapacity = errors.New("guest capacity must be positive")
	ErrEmptyNumber     = errors.New("room number must not be empty")
)

// Money is an amount of tenge. Prices are whole KZT, no fractional part.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

func (m Money) MulNights(nights int) Money {
	return Money{amount: m.amount * int64(nights)}
}

func (m Money) Equal(other Money) bool {
	return m.amount == other.amount
}

func (m Money) String() string {
	return fmt.Sprintf("%d KZT", m.amount)
}

type Number struct {
	value string
}

func NewNumber(value string) (Number, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Number{}, ErrEmptyNumber
	}
	return Number{value: trimmed}, nil
}

func (n Number) String() string {
	return n.value
}
