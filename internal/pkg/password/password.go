// Package password wraps bcrypt for stored credentials. A bcrypt hash carries
// its own salt and cost factor, so the users table needs one text column.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// ComparePassword returns nil when the plaintext matches the stored hash.
// A mismatch maps to ErrComparisonFailed; anything else is a bcrypt failure.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
