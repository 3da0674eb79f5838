package models

import "time"

// Item は Todo に属する項目です。
// TodoID は NULL を許容するため、ポインタで表現します。
type Item struct {
	ID        int       `json:"id,omitempty"`
	Name      string    `json:"name"`
	Done      bool      `json:"done"`
	TodoID    *int      `json:"todo_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// ItemCreateRequest は項目作成リクエストです。todo_id はパスから決まります。
type ItemCreateRequest struct {
	Name string `json:"name" binding:"required"`
	Done bool   `json:"done"`
}

// ItemUpdateRequest は項目更新リクエストです。指定されたフィールドだけを更新します。
type ItemUpdateRequest struct {
	Name *string `json:"name"`
	Done *bool   `json:"done"`
}
