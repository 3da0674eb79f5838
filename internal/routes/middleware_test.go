package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-items-api/internal/routes"
	"todo-items-api/internal/services"
)

// newAuthRouter はDBを使わずにミドルウェアだけを検証するためのルーターです。
func newAuthRouter(jwtService *services.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(routes.RequestIDMiddleware())
	r.GET("/api/protected", routes.AuthMiddleware(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Access granted",
			"user_id": c.GetInt("user_id"),
			"email":   c.GetString("user_email"),
			"role":    c.GetString("user_role"),
		})
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := services.NewJWTServiceWithSecret("test-secret")
	r := newAuthRouter(jwtService)

	token, err := jwtService.GenerateToken(1, "normal_user@example.com", "user")
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Access granted", response["message"])
	assert.Equal(t, float64(1), response["user_id"]) // user_idはfloat64でデコードされる
	assert.Equal(t, "normal_user@example.com", response["email"])
	assert.Equal(t, "user", response["role"])
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := newAuthRouter(services.NewJWTServiceWithSecret("test-secret"))

	req, _ := http.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Invalid or expired token")
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	r := newAuthRouter(services.NewJWTServiceWithSecret("test-secret"))

	req, _ := http.NewRequest(http.MethodGet, "/api/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Authorization header required")
}

func TestAuthMiddleware_MissingBearerPrefix(t *testing.T) {
	jwtService := services.NewJWTServiceWithSecret("test-secret")
	r := newAuthRouter(jwtService)
	token, err := jwtService.GenerateToken(1, "normal_user@example.com", "user")
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token format")
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newAuthRouter(services.NewJWTServiceWithSecret("test-secret"))

	t.Run("generates a uuid when absent", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		id := w.Header().Get(routes.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "X-Request-ID should be a uuid, got %q", id)
	})

	t.Run("echoes the client id", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/protected", nil)
		req.Header.Set(routes.RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(routes.RequestIDHeader))
	})
}
