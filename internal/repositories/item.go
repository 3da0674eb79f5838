package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"todo-items-api/internal/models"
)

// ErrItemNotFound は項目が見つからない場合のエラーです。
var ErrItemNotFound = errors.New("item not found")

// ItemRepository はitemsテーブルを操作します。
type ItemRepository struct {
	DB *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

const itemColumns = "id, name, done, todo_id, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		it     models.Item
		todoID sql.NullInt64
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Done, &todoID, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	if todoID.Valid {
		id := int(todoID.Int64)
		it.TodoID = &id
	}
	return &it, nil
}

func nullTodoID(todoID *int) sql.NullInt64 {
	if todoID == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*todoID), Valid: true}
}

// Create は項目を挿入し、保存後の値を返します。TodoID が nil の場合は NULL で保存します。
func (r *ItemRepository) Create(it *models.Item) (*models.Item, error) {
	query := "INSERT INTO items (name, done, todo_id) VALUES (?, ?, ?)"
	result, err := r.DB.Exec(query, it.Name, it.Done, nullTodoID(it.TodoID))
	if err != nil {
		log.Printf("Failed to insert item: %v", err)
		return nil, fmt.Errorf("could not insert item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}
	return r.FindByID(int(id))
}

// FindByTodoID は指定Todoに属する項目を作成順に取得します。
func (r *ItemRepository) FindByTodoID(todoID int) ([]*models.Item, error) {
	rows, err := r.DB.Query("SELECT "+itemColumns+" FROM items WHERE todo_id = ? ORDER BY id", todoID)
	if err != nil {
		log.Printf("Failed to query items: %v", err)
		return nil, fmt.Errorf("could not query items: %w", err)
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			log.Printf("Failed to scan item: %v", err)
			return nil, fmt.Errorf("could not scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}
	return items, nil
}

// FindByID は指定IDの項目を取得します。
func (r *ItemRepository) FindByID(id int) (*models.Item, error) {
	it, err := scanItem(r.DB.QueryRow("SELECT "+itemColumns+" FROM items WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		log.Printf("Failed to query item by ID: %v", err)
		return nil, fmt.Errorf("could not query item: %w", err)
	}
	return it, nil
}

// Update は項目の name / done / todo_id を保存します。
func (r *ItemRepository) Update(id int, it *models.Item) (*models.Item, error) {
	if _, err := r.FindByID(id); err != nil {
		return nil, err
	}

	query := "UPDATE items SET name = ?, done = ?, todo_id = ? WHERE id = ?"
	if _, err := r.DB.Exec(query, it.Name, it.Done, nullTodoID(it.TodoID), id); err != nil {
		log.Printf("Failed to update item: %v", err)
		return nil, fmt.Errorf("could not update item: %w", err)
	}
	return r.FindByID(id)
}

// Delete は指定IDの項目を削除します。
func (r *ItemRepository) Delete(id int) error {
	result, err := r.DB.Exec("DELETE FROM items WHERE id = ?", id)
	if err != nil {
		log.Printf("Failed to delete item: %v", err)
		return fmt.Errorf("could not delete item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

// DeleteByTodoID は指定Todoの項目をすべて削除し、削除件数を返します。
func (r *ItemRepository) DeleteByTodoID(todoID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM items WHERE todo_id = ?", todoID)
	if err != nil {
		log.Printf("Failed to delete items of todo %d: %v", todoID, err)
		return 0, fmt.Errorf("could not delete items: %w", err)
	}
	return result.RowsAffected()
}
