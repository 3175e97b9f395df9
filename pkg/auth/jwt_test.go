package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService(t *testing.T) {
	service := NewJWTService("test-secret")

	t.Run("Generate and validate token", func(t *testing.T) {
		token, err := service.GenerateJWT(42, time.Now().Add(time.Hour))
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		token, err := service.GenerateJWT(42, time.Now().Add(-time.Hour))
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Token signed with another secret is rejected", func(t *testing.T) {
		other := NewJWTService("other-secret")
		token, err := other.GenerateJWT(42, time.Now().Add(time.Hour))
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestHashService(t *testing.T) {
	service := &HashService{}

	t.Run("Hash and compare", func(t *testing.T) {
		hash, err := service.HashPassword("s3cret-pass")
		assert.NoError(t, err)
		assert.True(t, service.ComparePassword(hash, "s3cret-pass"))
		assert.False(t, service.ComparePassword(hash, "wrong-pass"))
	})

	t.Run("Empty password rejected", func(t *testing.T) {
		_, err := service.HashPassword("")
		assert.Error(t, err)
	})
}
