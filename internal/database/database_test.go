package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSNFromEnv(t *testing.T) {
	t.Setenv("TEST_DB_USER", "todo")
	t.Setenv("TEST_DB_PASS", "secret")
	t.Setenv("TEST_DB_HOST", "db")
	t.Setenv("TEST_DB_PORT", "3306")
	t.Setenv("TEST_DB_NAME", "todo_test")

	assert.Equal(t, "todo:secret@tcp(db:3306)/todo_test?parseTime=true", DSNFromEnv("TEST_DB_"))
}

func TestGetDSN_UsesDBPrefix(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "todos")

	assert.Equal(t, "app:pw@tcp(localhost:3307)/todos?parseTime=true", GetDSN())
}
