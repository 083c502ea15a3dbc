//go:build unit

package user_test

import (
	"testing"

	"hotel-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		email, err := user.NewEmail("  Guest@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", email.String())
	})

	for _, invalid := range []string{"", "not-an-email", "a@b", "spaces in@example.com"} {
		t.Run("rejects "+invalid, func(t *testing.T) {
			_, err := user.NewEmail(invalid)
			require.ErrorIs(t, err, user.ErrInvalidEmail)
		})
	}
}

func TestNewPhone(t *testing.T) {
	t.Run("empty phone is allowed", func(t *testing.T) {
		phone, err := user.NewPhone("")
		require.NoError(t, err)
		assert.True(t, phone.IsEmpty())
	})

	t.Run("dialable digits with plus", func(t *testing.T) {
		phone, err := user.NewPhone("+77011234567")
		require.NoError(t, err)
		assert.Equal(t, "+77011234567", phone.String())
	})

	t.Run("letters are rejected", func(t *testing.T) {
		_, err := user.NewPhone("call-me")
		require.ErrorIs(t, err, user.ErrInvalidPhone)
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("")
	require.ErrorIs(t, err, user.ErrEmptyPassword)

	_, err = user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", p.Value())
}

func TestRole(t *testing.T) {
	assert.False(t, user.RoleGuest.IsStaff())
	assert.True(t, user.RoleReception.IsStaff())
	assert.True(t, user.RoleManager.IsStaff())
	assert.True(t, user.RoleAdmin.IsStaff())

	_, err := user.NewRole("janitor")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}
