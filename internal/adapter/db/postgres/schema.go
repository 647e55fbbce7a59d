package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todo-user-service/internal/domain/todo"
	"todo-user-service/internal/domain/user"
)

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	FName     string `gorm:"column:fname;not null"`
	LName     string `gorm:"column:lname;not null"`
	Username  string `gorm:"not null;uniqueIndex"`
	Email     string `gorm:"not null;uniqueIndex"`
	Password  string `gorm:"not null"` // bcrypt hash
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key.
func (s *UserSchema) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *UserSchema) toDomain() *user.User {
	return &user.User{
		ID:           s.ID,
		FName:        s.FName,
		LName:        s.LName,
		Username:     s.Username,
		Email:        s.Email,
		PasswordHash: s.Password,
	}
}

// TodoSchema represents the database schema for the todo_items table.
// Added references users.username; renaming a user carries their items along
// and deleting a user deletes their items.
type TodoSchema struct {
	ID        string      `gorm:"primaryKey;type:varchar(36)"`
	ItemName  string      `gorm:"not null"`
	Added     string      `gorm:"not null;index"`
	Owner     *UserSchema `gorm:"foreignKey:Added;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the TodoSchema model.
func (TodoSchema) TableName() string {
	return "todo_items"
}

// BeforeCreate assigns a UUID primary key.
func (s *TodoSchema) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *TodoSchema) toDomain() todo.Item {
	return todo.Item{
		ID:       s.ID,
		ItemName: s.ItemName,
		Added:    s.Added,
	}
}

// AutoMigrate creates or updates the users and todo_items tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserSchema{}, &TodoSchema{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
