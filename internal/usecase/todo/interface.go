package todo

import (
	"context"

	domain "todo-user-service/internal/domain/todo"
)

// Usecase defines the interface for todo item operations.
type Usecase interface {
	CreateItem(ctx context.Context, in CreateItemRequest) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListItemsByOwner(ctx context.Context, username string) ([]domain.Item, error)
	UpdateItemName(ctx context.Context, in UpdateItemNameRequest) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// CreateItemRequest carries a new item and the username that owns it.
type CreateItemRequest struct {
	ItemName string
	Added    string
}

// UpdateItemNameRequest renames the item identified by ID.
type UpdateItemNameRequest struct {
	ID       string
	ItemName string
}
