package factory

import (
	"fmt"

	"todo-items-api/internal/models"
)

// UserCreator はユーザーを永続化します。repositories.UserRepository が満たします。
type UserCreator interface {
	Create(u *models.User) (*models.User, error)
}

// TodoCreator はTodoを永続化します。repositories.TodoRepository が満たします。
type TodoCreator interface {
	Create(t *models.Todo) (*models.Todo, error)
}

// ItemCreator は項目を永続化します。repositories.ItemRepository が満たします。
type ItemCreator interface {
	Create(i *models.Item) (*models.Item, error)
}

// Store は create 系の生成で使う永続化先です。
type Store struct {
	Users UserCreator
	Todos TodoCreator
	Items ItemCreator
}

// CreateUser は User を生成して保存します。
func (f *Factory) CreateUser(s Store, opts ...UserOption) (*models.User, error) {
	u, err := f.BuildUser(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not build user: %w", err)
	}
	created, err := s.Users.Create(u)
	if err != nil {
		return nil, fmt.Errorf("could not create user fixture: %w", err)
	}
	return created, nil
}

// CreateTodo は Todo を生成して保存します。
// WithTodoUserID が指定されていない場合は所有ユーザーも作成します。
func (f *Factory) CreateTodo(s Store, opts ...TodoOption) (*models.Todo, error) {
	o := applyTodoOptions(opts)
	if o.userID == nil {
		owner, err := f.CreateUser(s)
		if err != nil {
			return nil, err
		}
		o.userID = &owner.ID
	}
	created, err := s.Todos.Create(f.buildTodo(o))
	if err != nil {
		return nil, fmt.Errorf("could not create todo fixture: %w", err)
	}
	return created, nil
}

// CreateItem は Item を生成して保存します。親Todoは自動では作成しません。
func (f *Factory) CreateItem(s Store, opts ...ItemOption) (*models.Item, error) {
	created, err := s.Items.Create(f.BuildItem(opts...))
	if err != nil {
		return nil, fmt.Errorf("could not create item fixture: %w", err)
	}
	return created, nil
}

// CreateItems は count 件の Item を生成して保存します。途中で失敗した場合はそこで止まります。
func (f *Factory) CreateItems(s Store, count int, opts ...ItemOption) ([]*models.Item, error) {
	built := f.BuildItems(count, opts...)
	items := make([]*models.Item, 0, len(built))
	for _, item := range built {
		created, err := s.Items.Create(item)
		if err != nil {
			return items, fmt.Errorf("could not create item fixture: %w", err)
		}
		items = append(items, created)
	}
	return items, nil
}
