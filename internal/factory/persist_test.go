package factory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-items-api/internal/factory"
	"todo-items-api/internal/models"
)

// memoryStore はDBの代わりに連番IDを振るだけの永続化先です。
type memoryStore struct {
	users []*models.User
	todos []*models.Todo
	items []*models.Item

	failItemsAfter int
}

type memUsers struct{ s *memoryStore }
type memTodos struct{ s *memoryStore }
type memItems struct{ s *memoryStore }

func (m memUsers) Create(u *models.User) (*models.User, error) {
	u.ID = len(m.s.users) + 1
	m.s.users = append(m.s.users, u)
	return u, nil
}

func (m memTodos) Create(t *models.Todo) (*models.Todo, error) {
	t.ID = len(m.s.todos) + 1
	m.s.todos = append(m.s.todos, t)
	return t, nil
}

var errStoreFull = errors.New("store full")

func (m memItems) Create(i *models.Item) (*models.Item, error) {
	if m.s.failItemsAfter > 0 && len(m.s.items) >= m.s.failItemsAfter {
		return nil, errStoreFull
	}
	i.ID = len(m.s.items) + 1
	m.s.items = append(m.s.items, i)
	return i, nil
}

func newMemoryStore() (*memoryStore, factory.Store) {
	s := &memoryStore{}
	return s, factory.Store{Users: memUsers{s}, Todos: memTodos{s}, Items: memItems{s}}
}

func TestCreateTodo_CreatesOwnerWhenUnset(t *testing.T) {
	mem, store := newMemoryStore()
	f := factory.New(1)

	todo, err := f.CreateTodo(store)
	require.NoError(t, err)
	require.Len(t, mem.users, 1)
	assert.Equal(t, mem.users[0].ID, todo.UserID)
	assert.NotZero(t, todo.ID)
}

func TestCreateTodo_UsesGivenOwner(t *testing.T) {
	mem, store := newMemoryStore()
	f := factory.New(1)

	todo, err := f.CreateTodo(store, factory.WithTodoUserID(77))
	require.NoError(t, err)
	assert.Empty(t, mem.users)
	assert.Equal(t, 77, todo.UserID)
}

func TestCreateItem_DoesNotAssociateTodo(t *testing.T) {
	mem, store := newMemoryStore()
	f := factory.New(1)

	item, err := f.CreateItem(store)
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Nil(t, item.TodoID)
	assert.Empty(t, mem.todos, "親Todoは自動で作られないこと")
}

func TestCreateItems(t *testing.T) {
	mem, store := newMemoryStore()
	f := factory.New(1)

	items, err := f.CreateItems(store, 4, factory.WithItemTodoID(2))
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Len(t, mem.items, 4)
	for _, item := range items {
		require.NotNil(t, item.TodoID)
		assert.Equal(t, 2, *item.TodoID)
	}
}

func TestCreateItems_StopsOnStoreError(t *testing.T) {
	mem, store := newMemoryStore()
	mem.failItemsAfter = 2
	f := factory.New(1)

	items, err := f.CreateItems(store, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreFull)
	assert.Len(t, items, 2, "失敗前に保存された項目は返すこと")
}
