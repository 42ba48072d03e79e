package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", "Admin")
	assert.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "Admin", role)
}

func TestValidateGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenFromDifferentSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token := NewJWTService().GenerateTokenUser("user-123", "Admin")

	t.Setenv("JWT_SECRET", "secret-b")
	_, _, err := NewJWTService().GetUserIDByToken(token)
	assert.Error(t, err)
}
