package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "todo-user-service/internal/domain/todo"
	"todo-user-service/internal/usecase/todo"
	apperrors "todo-user-service/pkg/errors"
	"todo-user-service/pkg/logger"
)

// Failure messages for the todo routes
const (
	msgCreateFailed = "An error occurred while creating todo item."
	msgListFailed   = "An error occurred while fetching todo items."
	msgUpdateFailed = "An error occurred while updating todo item."
	msgDeleteFailed = "An error occurred while deleting todo item."
	msgDeleted      = "Todo item deleted successfully."
)

// TodoHandler handles HTTP requests for todo items
type TodoHandler struct {
	uc  todo.Usecase
	log *zap.Logger
}

// NewTodoHandler creates a new TodoHandler instance
func NewTodoHandler(uc todo.Usecase, log *zap.Logger) *TodoHandler {
	return &TodoHandler{uc: uc, log: log}
}

// CreateTodoRequest is the body of POST /todo
type CreateTodoRequest struct {
	ItemName string `json:"itemName"`
	Added    string `json:"added"`
}

// UpdateTodoRequest is the body of PUT /update/:id
type UpdateTodoRequest struct {
	ItemName string `json:"itemName"`
}

// TodoResponse represents a stored todo item
type TodoResponse struct {
	ID       string `json:"id"`
	ItemName string `json:"itemName"`
	Added    string `json:"added"`
}

// CreateItem handles POST /todo
func (h *TodoHandler) CreateItem(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, msgCreateFailed, err)
		return
	}

	item, err := h.uc.CreateItem(c.Request.Context(), todo.CreateItemRequest{ItemName: req.ItemName, Added: req.Added})
	if err != nil {
		h.fail(c, msgCreateFailed, err)
		return
	}

	c.JSON(http.StatusOK, toTodoResponse(*item))
}

// ListItems handles GET /todo
func (h *TodoHandler) ListItems(c *gin.Context) {
	items, err := h.uc.ListItems(c.Request.Context())
	if err != nil {
		h.fail(c, msgListFailed, err)
		return
	}

	c.JSON(http.StatusOK, toTodoResponses(items))
}

// ListItemsByOwner handles GET /todos/:username
func (h *TodoHandler) ListItemsByOwner(c *gin.Context) {
	items, err := h.uc.ListItemsByOwner(c.Request.Context(), c.Param("username"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		h.fail(c, msgListFailed, err)
		return
	}

	c.JSON(http.StatusOK, toTodoResponses(items))
}

// UpdateItemName handles PUT /update/:id. A missing id is reported as a
// failure like any other store error.
func (h *TodoHandler) UpdateItemName(c *gin.Context) {
	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, msgUpdateFailed, err)
		return
	}

	item, err := h.uc.UpdateItemName(c.Request.Context(), todo.UpdateItemNameRequest{ID: c.Param("id"), ItemName: req.ItemName})
	if err != nil {
		h.fail(c, msgUpdateFailed, err)
		return
	}

	c.JSON(http.StatusOK, toTodoResponse(*item))
}

// DeleteItem handles DELETE /todo/:id
func (h *TodoHandler) DeleteItem(c *gin.Context) {
	if err := h.uc.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, msgDeleteFailed, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: msgDeleted})
}

func (h *TodoHandler) fail(c *gin.Context, msg string, err error) {
	logger.WithContext(c.Request.Context(), h.log).Warn(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg, Details: err.Error()})
}

func toTodoResponse(item domain.Item) TodoResponse {
	return TodoResponse{ID: item.ID, ItemName: item.ItemName, Added: item.Added}
}

func toTodoResponses(items []domain.Item) []TodoResponse {
	out := make([]TodoResponse, len(items))
	for i, item := range items {
		out[i] = toTodoResponse(item)
	}
	return out
}
