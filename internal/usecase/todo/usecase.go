package todo

import (
	"context"

	"go.uber.org/zap"

	domain "todo-user-service/internal/domain/todo"
	apperrors "todo-user-service/pkg/errors"
	"todo-user-service/pkg/logger"
)

// MsgNoItemsForOwner is returned when an owner has no todo items.
const MsgNoItemsForOwner = "No todo items found for this user"

// Repository defines the interface for todo item data access.
type Repository interface {
	Create(ctx context.Context, item domain.Item) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	ListByOwner(ctx context.Context, username string) ([]domain.Item, error)
	UpdateItemName(ctx context.Context, id, itemName string) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}

// Service implements todo item operations on top of a Repository.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// New creates a new Service.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

// CreateItem stores a new item. The owner must be an existing username.
func (s *Service) CreateItem(ctx context.Context, in CreateItemRequest) (*domain.Item, error) {
	item, err := s.repo.Create(ctx, domain.Item{ItemName: in.ItemName, Added: in.Added})
	if err != nil {
		logger.WithContext(ctx, s.log).Error("error creating todo item", zap.String("added", in.Added), zap.Error(err))
		return nil, err
	}
	return item, nil
}

// ListItems returns every item; an empty store yields an empty slice.
func (s *Service) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("error fetching todo items", zap.Error(err))
		return nil, err
	}
	return items, nil
}

// ListItemsByOwner returns the items added by username, or a NotFoundError
// when there are none.
func (s *Service) ListItemsByOwner(ctx context.Context, username string) ([]domain.Item, error) {
	items, err := s.repo.ListByOwner(ctx, username)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("error fetching todo items", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.NewNotFoundError("todo item", MsgNoItemsForOwner)
	}
	return items, nil
}

// UpdateItemName renames an item, leaving its owner unchanged.
func (s *Service) UpdateItemName(ctx context.Context, in UpdateItemNameRequest) (*domain.Item, error) {
	item, err := s.repo.UpdateItemName(ctx, in.ID, in.ItemName)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("error updating todo item", zap.String("id", in.ID), zap.Error(err))
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item by ID.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.WithContext(ctx, s.log).Error("error deleting todo item", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
