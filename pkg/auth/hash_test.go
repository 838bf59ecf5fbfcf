package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	s := &HashService{}

	t.Run("Hashes a non-empty password", func(t *testing.T) {
		hash, err := s.HashPassword("s3cret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "s3cret-pass", hash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")))
	})

	t.Run("Rejects an empty password", func(t *testing.T) {
		hash, err := s.HashPassword("")
		assert.ErrorIs(t, err, ErrEmptyPassword)
		assert.Empty(t, hash)
	})

	t.Run("Same password hashes to different salts", func(t *testing.T) {
		first, err := s.HashPassword("repeatable")
		require.NoError(t, err)
		second, err := s.HashPassword("repeatable")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestComparePassword(t *testing.T) {
	s := &HashService{}

	hash, err := s.HashPassword("wallet-owner")
	require.NoError(t, err)

	t.Run("Matches the original password", func(t *testing.T) {
		assert.True(t, s.ComparePassword(hash, "wallet-owner"))
	})

	t.Run("Rejects a wrong password", func(t *testing.T) {
		assert.False(t, s.ComparePassword(hash, "wallet-0wner"))
	})

	t.Run("Rejects a malformed hash", func(t *testing.T) {
		assert.False(t, s.ComparePassword("not-a-bcrypt-hash", "wallet-owner"))
	})
}
