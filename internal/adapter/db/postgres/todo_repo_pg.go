package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"todo-user-service/internal/domain/todo"
	apperrors "todo-user-service/pkg/errors"
)

// TodoRepoPG implements the todo Repository interface using GORM.
type TodoRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTodoRepoPG creates a new instance of TodoRepoPG.
func NewTodoRepoPG(db *gorm.DB, log *zap.Logger) *TodoRepoPG {
	return &TodoRepoPG{db: db, log: log}
}

// Create inserts a todo item owned by item.Added.
func (r *TodoRepoPG) Create(ctx context.Context, item todo.Item) (*todo.Item, error) {
	model := TodoSchema{
		ItemName: item.ItemName,
		Added:    item.Added,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create todo item in db", zap.Error(err), zap.String("added", item.Added))
		return nil, fmt.Errorf("failed to create todo item: %w", err)
	}

	r.log.Info("todo item created in db", zap.String("id", model.ID))
	created := model.toDomain()
	return &created, nil
}

// GetByID retrieves a todo item by ID.
func (r *TodoRepoPG) GetByID(ctx context.Context, id string) (*todo.Item, error) {
	var model TodoSchema
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("todo item", fmt.Sprintf("todo item not found: id=%s", id))
		}
		return nil, fmt.Errorf("failed to get todo item: %w", err)
	}

	item := model.toDomain()
	return &item, nil
}

// List returns every todo item in insertion order.
func (r *TodoRepoPG) List(ctx context.Context) ([]todo.Item, error) {
	return r.find(ctx, r.db.WithContext(ctx))
}

// ListByOwner returns the todo items whose owner is username.
func (r *TodoRepoPG) ListByOwner(ctx context.Context, username string) ([]todo.Item, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("added = ?", username))
}

func (r *TodoRepoPG) find(ctx context.Context, q *gorm.DB) ([]todo.Item, error) {
	var models []TodoSchema
	if err := q.Order("created_at, id").Find(&models).Error; err != nil {
		r.log.Error("failed to list todo items from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list todo items: %w", err)
	}

	items := make([]todo.Item, len(models))
	for i := range models {
		items[i] = models[i].toDomain()
	}
	return items, nil
}

// UpdateItemName changes only the item name and returns the stored row.
func (r *TodoRepoPG) UpdateItemName(ctx context.Context, id, itemName string) (*todo.Item, error) {
	res := r.db.WithContext(ctx).Model(&TodoSchema{}).Where("id = ?", id).Update("item_name", itemName)
	if res.Error != nil {
		r.log.Error("failed to update todo item in db", zap.Error(res.Error), zap.String("id", id))
		return nil, fmt.Errorf("failed to update todo item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("todo item", fmt.Sprintf("todo item not found: id=%s", id))
	}

	r.log.Info("todo item updated in db", zap.String("id", id))
	return r.GetByID(ctx, id)
}

// Delete removes a todo item by ID.
func (r *TodoRepoPG) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TodoSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete todo item in db", zap.Error(res.Error), zap.String("id", id))
		return fmt.Errorf("failed to delete todo item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("todo item", fmt.Sprintf("todo item not found: id=%s", id))
	}

	r.log.Info("todo item deleted in db", zap.String("id", id))
	return nil
}
