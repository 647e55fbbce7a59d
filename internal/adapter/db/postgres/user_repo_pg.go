package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"todo-user-service/internal/domain/user"
	apperrors "todo-user-service/pkg/errors"
)

// UserRepoPG implements the user Repository interface using GORM.
type UserRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// Create inserts a new user and returns the stored row with its generated ID.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := UserSchema{
		FName:    u.FName,
		LName:    u.LName,
		Username: u.Username,
		Email:    u.Email,
		Password: u.PasswordHash,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Warn("failed to create user in db", zap.Error(err), zap.String("username", u.Username))
		return nil, translateUserError(err, "failed to create user")
	}

	r.log.Info("user created in db", zap.String("id", model.ID))
	return model.toDomain(), nil
}

// Update replaces every mutable field of the user identified by u.ID.
func (r *UserRepoPG) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	res := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", u.ID).Updates(map[string]any{
		"fname":    u.FName,
		"lname":    u.LName,
		"username": u.Username,
		"email":    u.Email,
		"password": u.PasswordHash,
	})
	if res.Error != nil {
		r.log.Warn("failed to update user in db", zap.Error(res.Error), zap.String("id", u.ID))
		return nil, translateUserError(res.Error, "failed to update user")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%s", u.ID))
	}

	r.log.Info("user updated in db", zap.String("id", u.ID))
	return r.GetByID(ctx, u.ID)
}

// Delete removes a user by ID. Their todo items go with them.
func (r *UserRepoPG) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(res.Error), zap.String("id", id))
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%s", id))
	}

	r.log.Info("user deleted in db", zap.String("id", id))
	return nil
}

// GetByID retrieves a user by their unique ID.
func (r *UserRepoPG) GetByID(ctx context.Context, id string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found", zap.String("id", id))
			return nil, apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%s", id))
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.toDomain(), nil
}

// GetByUsername retrieves a user by their unique username.
func (r *UserRepoPG) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by username", zap.String("username", username))
			return nil, apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: username=%s", username))
		}
		r.log.Error("failed to get user by username from db", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return model.toDomain(), nil
}

// translateUserError maps a uniqueness violation to AlreadyExistsError and wraps anything else.
func translateUserError(err error, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &apperrors.AlreadyExistsError{Resource: "user", Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
