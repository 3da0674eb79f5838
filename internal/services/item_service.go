package services

import (
	"todo-items-api/internal/models"
	"todo-items-api/internal/repositories"
)

// ItemService はTodo配下の項目を扱います。
// 項目へのアクセス可否は親Todoの認可に従います。
type ItemService struct {
	todoService *TodoService
	itemRepo    *repositories.ItemRepository
}

func NewItemService(todoService *TodoService, itemRepo *repositories.ItemRepository) *ItemService {
	return &ItemService{todoService: todoService, itemRepo: itemRepo}
}

// ListItems は親Todoの項目一覧を返します。
func (s *ItemService) ListItems(todoID, userID int, userRole string) ([]*models.Item, error) {
	if _, err := s.todoService.GetTodoByID(todoID, userID, userRole); err != nil {
		return nil, err
	}
	return s.itemRepo.FindByTodoID(todoID)
}

// GetItem は親Todoに属する項目を1件返します。別のTodoの項目は ErrItemNotFound です。
func (s *ItemService) GetItem(todoID, itemID, userID int, userRole string) (*models.Item, error) {
	if _, err := s.todoService.GetTodoByID(todoID, userID, userRole); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.TodoID == nil || *item.TodoID != todoID {
		return nil, repositories.ErrItemNotFound
	}
	return item, nil
}

// CreateItem は親Todoに項目を追加します。
func (s *ItemService) CreateItem(todoID int, req models.ItemCreateRequest, userID int, userRole string) (*models.Item, error) {
	if _, err := s.todoService.GetTodoByID(todoID, userID, userRole); err != nil {
		return nil, err
	}
	item := &models.Item{Name: req.Name, Done: req.Done, TodoID: &todoID}
	return s.itemRepo.Create(item)
}

// UpdateItem は指定されたフィールドだけを更新します。
func (s *ItemService) UpdateItem(todoID, itemID int, req models.ItemUpdateRequest, userID int, userRole string) (*models.Item, error) {
	item, err := s.GetItem(todoID, itemID, userID, userRole)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Done != nil {
		item.Done = *req.Done
	}
	return s.itemRepo.Update(itemID, item)
}

// DeleteItem は項目を削除します。
func (s *ItemService) DeleteItem(todoID, itemID, userID int, userRole string) error {
	if _, err := s.GetItem(todoID, itemID, userID, userRole); err != nil {
		return err
	}
	return s.itemRepo.Delete(itemID)
}
