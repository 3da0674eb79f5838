package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-items-api/internal/services"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := services.NewJWTServiceWithSecret("test-secret")

	token, err := svc.GenerateToken(42, "normal_user@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "normal_user@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, err := services.NewJWTServiceWithSecret("secret-a").GenerateToken(1, "a@example.com", "admin")
	require.NoError(t, err)

	_, err = services.NewJWTServiceWithSecret("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	_, err := services.NewJWTServiceWithSecret("test-secret").ValidateToken("invalid.jwt.token")
	assert.Error(t, err)
}
