// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"todo-items-api/internal/models"
)

var (
	// ErrTodoNotFound はTODOが見つからない場合のエラーです。
	ErrTodoNotFound = errors.New("todo not found")
	// ErrTodoForbidden は他人のTODOにアクセスしようとした場合のエラーです。
	ErrTodoForbidden = errors.New("todo access forbidden")
)

// TodoRepository はtodosテーブルを操作します。
type TodoRepository struct {
	DB *sql.DB
}

// NewTodoRepository は新しいTodoRepositoryインスタンスを作成します。
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{DB: db}
}

const todoColumns = "id, user_id, title, completed, created_at, updated_at"

// Create は新しいTodoタスクをデータベースに挿入し、保存後の値を返します。
func (r *TodoRepository) Create(t *models.Todo) (*models.Todo, error) {
	query := "INSERT INTO todos (user_id, title, completed) VALUES (?, ?, ?)"
	result, err := r.DB.Exec(query, t.UserID, t.Title, t.Completed)
	if err != nil {
		log.Printf("Failed to insert todo: %v", err)
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}

	// created_at / updated_at はDBが設定するため読み直す
	return r.FindByID(int(id))
}

// FindAll はすべてのTodoタスクを取得します（admin用）。
func (r *TodoRepository) FindAll() ([]*models.Todo, error) {
	return r.query("SELECT " + todoColumns + " FROM todos ORDER BY created_at DESC, id DESC")
}

// FindByUserID は指定ユーザーのTodoタスクを取得します。
func (r *TodoRepository) FindByUserID(userID int) ([]*models.Todo, error) {
	return r.query("SELECT "+todoColumns+" FROM todos WHERE user_id = ? ORDER BY created_at DESC, id DESC", userID)
}

func (r *TodoRepository) query(query string, args ...any) ([]*models.Todo, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		log.Printf("Failed to query todos: %v", err)
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			log.Printf("Failed to scan todo: %v", err)
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		todos = append(todos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}
	return todos, nil
}

// FindByID は指定されたIDのTodoタスクを取得します。
func (r *TodoRepository) FindByID(id int) (*models.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos WHERE id = ?"

	var t models.Todo
	err := r.DB.QueryRow(query, id).Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Failed to query todo by ID: %v", err)
		return nil, fmt.Errorf("could not query todo: %w", err)
	}
	return &t, nil
}

// Update は指定されたIDのTodoタスクのタイトルと完了状態を更新します。
func (r *TodoRepository) Update(id int, t *models.Todo) (*models.Todo, error) {
	// 値が変わらない場合 RowsAffected は 0 になるため、存在確認は先に行う
	if _, err := r.FindByID(id); err != nil {
		return nil, err
	}

	query := "UPDATE todos SET title = ?, completed = ? WHERE id = ?"
	if _, err := r.DB.Exec(query, t.Title, t.Completed, id); err != nil {
		log.Printf("Failed to update todo: %v", err)
		return nil, fmt.Errorf("could not update todo: %w", err)
	}
	return r.FindByID(id)
}

// Delete は指定されたIDのTodoタスクを削除します。項目は外部キーでまとめて削除されます。
func (r *TodoRepository) Delete(id int) error {
	result, err := r.DB.Exec("DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		log.Printf("Failed to delete todo: %v", err)
		return fmt.Errorf("could not delete todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
