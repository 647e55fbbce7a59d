package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"todo-user-service/internal/domain/todo"
	"todo-user-service/internal/domain/user"
	apperrors "todo-user-service/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// a second connection would see a different in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func newAlice() *user.User {
	return &user.User{
		FName:        "Alice",
		LName:        "Liddell",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$04$hash",
	}
}

func TestUserRepoPG_Create(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newAlice())
	require.NoError(t, err)

	assert.Len(t, created.ID, 36)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "$2a$04$hash", created.PasswordHash)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestUserRepoPG_Create_Nil(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))

	_, err := repo.Create(context.Background(), nil)
	assert.Error(t, err)
}

func TestUserRepoPG_Create_Duplicate(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newAlice())
	require.NoError(t, err)

	tests := []struct {
		name string
		u    *user.User
	}{
		{"same username", &user.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"}},
		{"same email", &user.User{Username: "other", Email: "alice@example.com", PasswordHash: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tt.u)
			require.Error(t, err)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestUserRepoPG_GetByUsername(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newAlice())
	require.NoError(t, err)

	found, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByUsername(ctx, "bob")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserRepoPG_Update(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newAlice())
	require.NoError(t, err)

	updated, err := repo.Update(ctx, &user.User{
		ID:           created.ID,
		FName:        "Alicia",
		LName:        "Smith",
		Username:     "alicia",
		Email:        "alicia@example.com",
		PasswordHash: "$2a$04$other",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Alicia", updated.FName)
	assert.Equal(t, "Smith", updated.LName)
	assert.Equal(t, "alicia", updated.Username)
	assert.Equal(t, "alicia@example.com", updated.Email)
	assert.Equal(t, "$2a$04$other", updated.PasswordHash)
}

func TestUserRepoPG_Update_NotFound(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))

	u := newAlice()
	u.ID = "00000000-0000-0000-0000-000000000000"
	_, err := repo.Update(context.Background(), u)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserRepoPG_Delete(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newAlice())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	err = repo.Delete(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserRepoPG_Delete_CascadesTodoItems(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepoPG(db, zaptest.NewLogger(t))
	todos := NewTodoRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	alice, err := users.Create(ctx, newAlice())
	require.NoError(t, err)
	_, err = todos.Create(ctx, todo.Item{ItemName: "Buy milk", Added: "alice"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, alice.ID))

	items, err := todos.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUserRepoPG_Update_RenameCarriesTodoItems(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepoPG(db, zaptest.NewLogger(t))
	todos := NewTodoRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	alice, err := users.Create(ctx, newAlice())
	require.NoError(t, err)
	_, err = todos.Create(ctx, todo.Item{ItemName: "Buy milk", Added: "alice"})
	require.NoError(t, err)

	renamed := *alice
	renamed.Username = "alicia"
	_, err = users.Update(ctx, &renamed)
	require.NoError(t, err)

	items, err := todos.ListByOwner(ctx, "alicia")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].ItemName)
}
