package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-items-api/internal/factory"
	"todo-items-api/internal/models"
	"todo-items-api/testutil"
)

func TestRegisterUser_Success(t *testing.T) {
	env := testutil.SetupTestDB(t)

	newUserData := map[string]string{
		"username": "newuser_01",
		"email":    "newuser@example.com",
		"password": "newpassword",
	}
	w := testutil.DoJSON(t, env.Router, http.MethodPost, "/api/register", "", newUserData)

	require.Equal(t, http.StatusCreated, w.Code, "Expected HTTP Status Code 201 Created")
	var responseUser models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseUser))
	assert.NotZero(t, responseUser.ID)
	assert.Equal(t, "newuser_01", responseUser.Username)
	assert.Equal(t, "newuser@example.com", responseUser.Email)
	assert.Equal(t, "user", responseUser.Role, "Expected default role to be 'user'")
	assert.NotContains(t, w.Body.String(), "password", "Password hash should not be returned in response")
}

func TestRegisterUser_InvalidInput(t *testing.T) {
	env := testutil.SetupTestDB(t)

	invalidUserData := map[string]string{
		"username": "invaliduser",
		"email":    "invalid@example.com",
	}
	w := testutil.DoJSON(t, env.Router, http.MethodPost, "/api/register", "", invalidUserData)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Invalid request payload")
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	env := testutil.SetupTestDB(t)

	_, err := env.Factory.CreateUser(env.Store(), factory.WithUserEmail("duplicate@example.com"))
	require.NoError(t, err)

	duplicateUserData := map[string]string{
		"username": "anotheruser",
		"email":    "duplicate@example.com",
		"password": "somepassword",
	}
	w := testutil.DoJSON(t, env.Router, http.MethodPost, "/api/register", "", duplicateUserData)

	assert.Equal(t, http.StatusConflict, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Username or email already exists")
}

func TestLoginUser_Success(t *testing.T) {
	env := testutil.SetupTestDB(t)

	u, err := env.Factory.CreateUser(env.Store())
	require.NoError(t, err)

	token, err := testutil.LoginAndGetToken(t, env.Router, u.Email, factory.DefaultUserPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	env := testutil.SetupTestDB(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nonexistent@example.com", "wrongpassword"},
		{"wrong password", testutil.NormalUserEmail, "wrongpassword"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.DoJSON(t, env.Router, http.MethodPost, "/api/login", "",
				map[string]string{"email": tt.email, "password": tt.password})

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var response map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Contains(t, response["error"], "Invalid credentials")
		})
	}
}

func TestProtectedHandler(t *testing.T) {
	env := testutil.SetupTestDB(t)

	token, err := testutil.LoginAndGetToken(t, env.Router, testutil.NormalUserEmail, testutil.NormalUserPassword)
	require.NoError(t, err)

	w := testutil.DoJSON(t, env.Router, http.MethodGet, "/api/protected", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Access granted", response["message"])
	assert.Equal(t, float64(env.NormalUser.ID), response["user_id"])
	assert.Equal(t, testutil.NormalUserEmail, response["email"])
}
