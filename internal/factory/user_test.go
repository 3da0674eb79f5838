package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-items-api/internal/factory"
	"todo-items-api/internal/models"
	"todo-items-api/internal/repositories"
)

func TestBuildUser_Defaults(t *testing.T) {
	f := factory.New(1)

	u, err := f.BuildUser()
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.GreaterOrEqual(t, len(u.Username), 8, "username は登録時のバリデーション(min=8)を満たすこと")
	assert.Contains(t, u.Email, "@")
	assert.NoError(t, repositories.VerifyPassword(u.PasswordHash, factory.DefaultUserPassword))
}

func TestBuildUser_Unique(t *testing.T) {
	f := factory.New(1)

	a, err := f.BuildUser()
	require.NoError(t, err)
	b, err := f.BuildUser()
	require.NoError(t, err)

	assert.NotEqual(t, a.Username, b.Username)
	assert.NotEqual(t, a.Email, b.Email)
}

func TestBuildUser_Overrides(t *testing.T) {
	f := factory.New(1)

	u, err := f.BuildUser(
		factory.WithUsername("admin_user"),
		factory.WithUserEmail("admin@example.com"),
		factory.WithUserPassword("adminpass"),
		factory.WithUserRole(models.RoleAdmin),
	)
	require.NoError(t, err)
	assert.Equal(t, "admin_user", u.Username)
	assert.Equal(t, "admin@example.com", u.Email)
	assert.Equal(t, models.RoleAdmin, u.Role)
	assert.NoError(t, repositories.VerifyPassword(u.PasswordHash, "adminpass"))
	assert.Error(t, repositories.VerifyPassword(u.PasswordHash, factory.DefaultUserPassword))
}
