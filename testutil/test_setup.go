// Package testutil はDBを使う結合テストの共通セットアップを提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"todo-items-api/internal/database"
	"todo-items-api/internal/factory"
	"todo-items-api/internal/models"
	"todo-items-api/internal/repositories"
	"todo-items-api/internal/routes"
	"todo-items-api/internal/services"
)

// テスト用に事前作成されるユーザー
const (
	NormalUserEmail    = "normal_user@example.com"
	NormalUserPassword = "password123"
	AdminUserEmail     = "admin@example.com"
	AdminUserPassword  = "adminpass"

	testJWTSecret = "test-jwt-secret"
)

// Env は結合テストで使う依存一式です。
type Env struct {
	DB      *sql.DB
	Router  *gin.Engine
	Todos   *repositories.TodoRepository
	Items   *repositories.ItemRepository
	Users   *repositories.UserRepository
	Factory *factory.Factory

	NormalUser *models.User
	AdminUser  *models.User
}

// Store はファクトリの create 系生成で使う永続化先を返します。
func (e *Env) Store() factory.Store {
	return factory.Store{Users: e.Users, Todos: e.Todos, Items: e.Items}
}

// SetupTestDB はテスト用のデータベース接続を確立し、テーブルを作成し、テストデータを投入します。
// TEST_DB_HOST が設定されていない場合はテストをスキップします。
func SetupTestDB(t *testing.T) *Env {
	t.Helper()

	// .env が無い環境（CIなど）では環境変数をそのまま使う
	_ = godotenv.Load("../../.env")

	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST is not set; skipping database test")
	}

	db, err := database.Open(database.DSNFromEnv("TEST_DB_"))
	if err != nil {
		t.Fatalf("Failed to connect test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// テストのたびにクリーンな状態にする
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := database.Truncate(db); err != nil {
		t.Fatalf("Failed to truncate test database: %v", err)
	}

	env := &Env{
		DB:      db,
		Todos:   repositories.NewTodoRepository(db),
		Items:   repositories.NewItemRepository(db),
		Users:   repositories.NewUserRepository(db),
		Factory: factory.New(0),
	}

	env.NormalUser, err = env.Factory.CreateUser(env.Store(),
		factory.WithUsername("normal_user"),
		factory.WithUserEmail(NormalUserEmail),
		factory.WithUserPassword(NormalUserPassword),
	)
	require.NoError(t, err)
	env.AdminUser, err = env.Factory.CreateUser(env.Store(),
		factory.WithUsername("admin_user"),
		factory.WithUserEmail(AdminUserEmail),
		factory.WithUserPassword(AdminUserPassword),
		factory.WithUserRole(models.RoleAdmin),
	)
	require.NoError(t, err)

	log.Println("Successfully set up test database!")

	env.Router = SetupTestRouter(db)
	return env
}

// SetupTestRouter はテスト用のGinルーターをセットアップします。
func SetupTestRouter(db *sql.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return routes.SetupRouter(db, services.NewJWTServiceWithSecret(testJWTSecret))
}

// LoginAndGetToken はログインAPIを呼び出してJWTを取得します。
func LoginAndGetToken(t *testing.T, router *gin.Engine, email, password string) (string, error) {
	t.Helper()
	loginPayload := map[string]string{
		"email":    email,
		"password": password,
	}
	body, _ := json.Marshal(loginPayload)

	req, _ := http.NewRequest(http.MethodPost, "/api/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", resp.Code, resp.Body.String())
	}

	var loginRes map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &loginRes); err != nil {
		return "", fmt.Errorf("failed to unmarshal login response: %w", err)
	}

	token, ok := loginRes["token"].(string)
	if !ok {
		return "", errors.New("token not found or not a string in login response")
	}
	return token, nil
}

// DoJSON はJSONボディ付きのリクエストを送り、レスポンスを返します。token が空ならAuthorizationを付けません。
func DoJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}
