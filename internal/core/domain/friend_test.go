package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

func TestNewFriend(t *testing.T) {
	t.Run("Success: Normalizes both emails", func(t *testing.T) {
		f, err := domain.NewFriend(" Galih@Example.com ", "Budi@Example.com", "Budi")

		assert.NoError(t, err)
		assert.Equal(t, "galih@example.com", f.OwnerEmail)
		assert.Equal(t, "budi@example.com", f.FriendEmail)
		assert.Equal(t, "Budi", f.Name)
	})

	t.Run("Success: Empty name falls back to email local part", func(t *testing.T) {
		f, err := domain.NewFriend("galih@example.com", "budi@example.com", "")

		assert.NoError(t, err)
		assert.Equal(t, "budi", f.Name)
	})

	t.Run("Error: Invalid friend email", func(t *testing.T) {
		_, err := domain.NewFriend("galih@example.com", "not-an-email", "")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("Error: Cannot friend yourself, case-insensitively", func(t *testing.T) {
		_, err := domain.NewFriend("galih@example.com", "GALIH@example.com", "")
		assert.ErrorIs(t, err, domain.ErrSelfFriend)
	})
}

func TestFriend_Mirror(t *testing.T) {
	f, err := domain.NewFriend("galih@example.com", "budi@example.com", "Budi")
	assert.NoError(t, err)

	t.Run("Swaps direction and carries the owner's name", func(t *testing.T) {
		m := f.Mirror("Galih Kur")

		assert.Equal(t, "budi@example.com", m.OwnerEmail)
		assert.Equal(t, "galih@example.com", m.FriendEmail)
		assert.Equal(t, "Galih Kur", m.Name)
		assert.Equal(t, f.AddedAt, m.AddedAt)
	})

	t.Run("Empty owner name falls back to email local part", func(t *testing.T) {
		m := f.Mirror("")
		assert.Equal(t, "galih", m.Name)
	})
}
