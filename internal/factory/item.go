package factory

import (
	"strings"

	"todo-items-api/internal/models"
)

// ItemNameWords は Item.Name を構成する単語数です。
const ItemNameWords = 5

// ItemOption は Item のフィールドを上書きします。
type ItemOption func(*itemOverrides)

type itemOverrides struct {
	name   *string
	done   *bool
	todoID *int
}

// WithItemName は name を上書きします。
func WithItemName(name string) ItemOption {
	return func(o *itemOverrides) { o.name = &name }
}

// WithItemDone は done を上書きします。
func WithItemDone(done bool) ItemOption {
	return func(o *itemOverrides) { o.done = &done }
}

// WithItemTodoID は親Todoを関連付けます。
func WithItemTodoID(todoID int) ItemOption {
	return func(o *itemOverrides) { o.todoID = &todoID }
}

// BuildItem はメモリ上に Item を1件生成します。
// 上書きされなかったフィールドはデフォルトルールで決まります:
//   - name: コーパスから5語を重複ありで選び、半角スペースで連結
//   - done: false
//   - todo_id: nil
func (f *Factory) BuildItem(opts ...ItemOption) *models.Item {
	var o itemOverrides
	for _, opt := range opts {
		opt(&o)
	}

	item := &models.Item{}
	if o.name != nil {
		item.Name = *o.name
	} else {
		item.Name = f.itemName()
	}
	if o.done != nil {
		item.Done = *o.done
	}
	if o.todoID != nil {
		id := *o.todoID
		item.TodoID = &id
	}
	return item
}

// BuildItems は count 件の Item を互いに独立して生成します。
// count が 0 以下なら空のスライスを返します。
func (f *Factory) BuildItems(count int, opts ...ItemOption) []*models.Item {
	if count < 0 {
		count = 0
	}
	items := make([]*models.Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, f.BuildItem(opts...))
	}
	return items
}

func (f *Factory) itemName() string {
	words := make([]string, ItemNameWords)
	for i := range words {
		words[i] = f.faker.RandomString(loremWords)
	}
	return strings.Join(words, " ")
}
