package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-items-api/internal/models"
	"todo-items-api/internal/services"
)

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoHandler は新しいTodoを作成します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var newTodo models.Todo
	if err := c.ShouldBindJSON(&newTodo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	createdTodo, err := h.todoService.CreateTodo(&newTodo, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save todo to database"})
		return
	}
	c.JSON(http.StatusCreated, createdTodo)
}

// UpdateTodoHandler はTodoを更新します。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, userRole, ok := currentUser(c)
	if !ok {
		return
	}

	var updateTodo models.Todo
	if err := c.ShouldBindJSON(&updateTodo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	updatedTodo, err := h.todoService.UpdateTodo(id, &updateTodo, userID, userRole)
	if err != nil {
		writeLookupError(c, err, "Failed to update todo")
		return
	}
	c.JSON(http.StatusOK, updatedTodo)
}

// DeleteTodoHandler はTodoを削除します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, userRole, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(id, userID, userRole); err != nil {
		writeLookupError(c, err, "Failed to delete todo")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTodosHandler はTodoリストを取得します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	userID, userRole, ok := currentUser(c)
	if !ok {
		return
	}

	todos, err := h.todoService.GetTodos(userID, userRole)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetTodoByIDHandler は指定IDのTodoを取得します。
func (h *TodoHandler) GetTodoByIDHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, userRole, ok := currentUser(c)
	if !ok {
		return
	}

	todo, err := h.todoService.GetTodoByID(id, userID, userRole)
	if err != nil {
		writeLookupError(c, err, "Failed to fetch todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}
