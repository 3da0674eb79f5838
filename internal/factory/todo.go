package factory

import "todo-items-api/internal/models"

// TodoTitleWords は Todo.Title の単語数です。
const TodoTitleWords = 3

type TodoOption func(*todoOverrides)

type todoOverrides struct {
	title     *string
	completed *bool
	userID    *int
}

func WithTodoTitle(title string) TodoOption {
	return func(o *todoOverrides) { o.title = &title }
}

func WithTodoCompleted(completed bool) TodoOption {
	return func(o *todoOverrides) { o.completed = &completed }
}

// WithTodoUserID は所有ユーザーを指定します。CreateTodo ではユーザーの自動作成を抑止します。
func WithTodoUserID(userID int) TodoOption {
	return func(o *todoOverrides) { o.userID = &userID }
}

// BuildTodo はメモリ上に Todo を1件生成します。UserID は指定がなければ 0 です。
func (f *Factory) BuildTodo(opts ...TodoOption) *models.Todo {
	o := applyTodoOptions(opts)
	return f.buildTodo(o)
}

// BuildTodos は count 件の Todo を生成します。
func (f *Factory) BuildTodos(count int, opts ...TodoOption) []*models.Todo {
	if count < 0 {
		count = 0
	}
	o := applyTodoOptions(opts)
	todos := make([]*models.Todo, 0, count)
	for i := 0; i < count; i++ {
		todos = append(todos, f.buildTodo(o))
	}
	return todos
}

func applyTodoOptions(opts []TodoOption) todoOverrides {
	var o todoOverrides
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (f *Factory) buildTodo(o todoOverrides) *models.Todo {
	t := &models.Todo{}
	if o.title != nil {
		t.Title = *o.title
	} else {
		t.Title = f.faker.LoremIpsumSentence(TodoTitleWords)
	}
	if o.completed != nil {
		t.Completed = *o.completed
	}
	if o.userID != nil {
		t.UserID = *o.userID
	}
	return t
}
