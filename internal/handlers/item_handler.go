package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-items-api/internal/models"
	"todo-items-api/internal/services"
)

// ItemHandler は /api/todos/:id/items 配下のハンドラーです。
type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// GetItemsHandler は親Todoの項目一覧を返します。
func (h *ItemHandler) GetItemsHandler(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, userRole, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListItems(todoID, userID, userRole)
	if err != nil {
		writeLookupError(c, err, "Failed to fetch items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemHandler は項目を1件返します。
func (h *ItemHandler) GetItemHandler(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	userID, userRole, ok := currentUser(c)
	if !ok {
		return
	}

	item, err := h.itemService.GetItem(todoID, itemID, userID, userRole)
	if err != nil {
		writeLookupError(c, err, "Failed to fetch item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItemHandler は親Todoに項目を追加します。
func (h *ItemHandler) CreateItemHandler(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	userID, userRole, ok := currentUser(c)
	if !ok {
		return
	}

	item, err := h.itemService.CreateItem(todoID, req, userID, userRole)
	if err != nil {
		writeLookupError(c, err, "Failed to save item to database")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItemHandler は項目を部分更新します。
func (h *ItemHandler) UpdateItemHandler(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	var req models.ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	userID, userRole, ok := currentUser(c)
	if !ok {
		return
	}

	item, err := h.itemService.UpdateItem(todoID, itemID, req, userID, userRole)
	if err != nil {
		writeLookupError(c, err, "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItemHandler は項目を削除します。
func (h *ItemHandler) DeleteItemHandler(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	userID, userRole, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(todoID, itemID, userID, userRole); err != nil {
		writeLookupError(c, err, "Failed to delete item")
		return
	}
	c.Status(http.StatusNoContent)
}
