package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	domain "todo-user-service/internal/domain/user"
	apperrors "todo-user-service/pkg/errors"
	"todo-user-service/pkg/security"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const userID = "7a0c2c57-1f0e-4b7e-b1b4-49a1e9d7f7aa"

func setupTestService(t *testing.T) (*Service, *MockRepository, *security.PasswordHasher) {
	mockRepo := new(MockRepository)
	hasher := security.NewPasswordHasher(bcrypt.MinCost)
	return New(mockRepo, hasher, zaptest.NewLogger(t)), mockRepo, hasher
}

func storedUser(t *testing.T, hasher *security.PasswordHasher, password string) *domain.User {
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           userID,
		FName:        "Ada",
		LName:        "Lovelace",
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: hash,
	}
}

// ==================== SIGNUP ====================

func TestSignup_HashesPassword(t *testing.T) {
	svc, mockRepo, hasher := setupTestService(t)
	ctx := context.Background()

	var saved *domain.User
	mockRepo.On("Create", ctx, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.User) }).
		Return(&domain.User{ID: userID, FName: "Ada", LName: "Lovelace", Username: "ada", Email: "ada@example.com"}, nil)

	resp, err := svc.Signup(ctx, SignupRequest{
		FName: "Ada", LName: "Lovelace", Username: "ada", Email: "ada@example.com", Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, "ada", resp.Username)
	require.NotNil(t, saved)
	assert.NotEqual(t, "s3cret", saved.PasswordHash)
	assert.NoError(t, hasher.Compare(saved.PasswordHash, "s3cret"))
	mockRepo.AssertExpectations(t)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	dup := &apperrors.AlreadyExistsError{Resource: "user", Err: errors.New("UNIQUE constraint failed: users.username")}
	mockRepo.On("Create", ctx, mock.Anything).Return(nil, dup)

	resp, err := svc.Signup(ctx, SignupRequest{Username: "ada", Password: "x"})
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsAlreadyExists(err))
	assert.Contains(t, err.Error(), "users.username")
}

// ==================== UPDATE ====================

func TestUpdateUser_Success(t *testing.T) {
	svc, mockRepo, hasher := setupTestService(t)
	ctx := context.Background()

	updated := &domain.User{ID: userID, FName: "Augusta", LName: "King", Username: "ada", Email: "ada@example.com"}
	mockRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == userID && u.FName == "Augusta" && hasher.Compare(u.PasswordHash, "new-pass") == nil
	})).Return(updated, nil)

	resp, err := svc.UpdateUser(ctx, UpdateUserRequest{
		ID: userID, FName: "Augusta", LName: "King", Username: "ada", Email: "ada@example.com", Password: "new-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", resp.FName)
	assert.Equal(t, "King", resp.LName)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Update", ctx, mock.Anything).Return(nil, apperrors.NewNotFoundError("user", "user not found: id=nope"))

	resp, err := svc.UpdateUser(ctx, UpdateUserRequest{ID: "nope", Password: "x"})
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
}

// ==================== DELETE ====================

func TestDeleteUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockRepo, _ := setupTestService(t)
		ctx := context.Background()
		mockRepo.On("Delete", ctx, userID).Return(nil)

		assert.NoError(t, svc.DeleteUser(ctx, DeleteUserRequest{ID: userID}))
		mockRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, mockRepo, _ := setupTestService(t)
		ctx := context.Background()
		mockRepo.On("Delete", ctx, "nope").Return(apperrors.NewNotFoundError("user", ""))

		err := svc.DeleteUser(ctx, DeleteUserRequest{ID: "nope"})
		assert.True(t, apperrors.IsNotFound(err))
	})
}

// ==================== LOGIN ====================

func TestLogin_Success(t *testing.T) {
	svc, mockRepo, hasher := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByUsername", ctx, "ada").Return(storedUser(t, hasher, "s3cret"), nil)

	resp, err := svc.Login(ctx, LoginRequest{Username: "ada", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, &LoginResponse{ID: userID, Username: "ada", Email: "ada@example.com"}, resp)
}

func TestLogin_MissingFields(t *testing.T) {
	cases := []LoginRequest{
		{Username: "", Password: "s3cret"},
		{Username: "ada", Password: ""},
		{},
	}
	for _, in := range cases {
		svc, mockRepo, _ := setupTestService(t)

		resp, err := svc.Login(context.Background(), in)
		assert.Nil(t, resp)

		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, MsgCredentialsRequired, verr.Message)
		mockRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByUsername", ctx, "ghost").Return(nil, apperrors.NewNotFoundError("user", "user not found: username=ghost"))

	resp, err := svc.Login(ctx, LoginRequest{Username: "ghost", Password: "x"})
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
	assert.EqualError(t, err, MsgUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockRepo, hasher := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByUsername", ctx, "ada").Return(storedUser(t, hasher, "s3cret"), nil)

	resp, err := svc.Login(ctx, LoginRequest{Username: "ada", Password: "guess"})
	assert.Nil(t, resp)
	assert.ErrorAs(t, err, new(*apperrors.UnauthorizedError))
	assert.EqualError(t, err, MsgInvalidPassword)
}

// Another account's password must not unlock this one.
func TestLogin_OtherAccountsPassword(t *testing.T) {
	svc, mockRepo, hasher := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByUsername", ctx, "ada").Return(storedUser(t, hasher, "ada-pass"), nil)

	_, err := svc.Login(ctx, LoginRequest{Username: "ada", Password: "bob-pass"})
	assert.ErrorAs(t, err, new(*apperrors.UnauthorizedError))
}

func TestLogin_StoreFailure(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByUsername", ctx, "ada").Return(nil, errors.New("connection refused"))

	_, err := svc.Login(ctx, LoginRequest{Username: "ada", Password: "x"})
	assert.EqualError(t, err, "failed to look up user: connection refused")
	assert.True(t, apperrors.IsInternal(err))
	assert.False(t, apperrors.IsNotFound(err))
}

func TestLogin_CorruptHash(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByUsername", ctx, "ada").Return(&domain.User{ID: userID, Username: "ada", PasswordHash: "plain"}, nil)

	_, err := svc.Login(ctx, LoginRequest{Username: "ada", Password: "plain"})
	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
	assert.NotErrorAs(t, err, new(*apperrors.UnauthorizedError))
}

// ==================== PROFILE ====================

func TestGetProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockRepo, hasher := setupTestService(t)
		ctx := context.Background()
		mockRepo.On("GetByID", ctx, userID).Return(storedUser(t, hasher, "x"), nil)

		resp, err := svc.GetProfile(ctx, GetProfileRequest{ID: userID})
		require.NoError(t, err)
		assert.Equal(t, &ProfileResponse{ID: userID, Email: "ada@example.com", Username: "ada"}, resp)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, mockRepo, _ := setupTestService(t)
		ctx := context.Background()
		mockRepo.On("GetByID", ctx, "nope").Return(nil, apperrors.NewNotFoundError("user", ""))

		resp, err := svc.GetProfile(ctx, GetProfileRequest{ID: "nope"})
		assert.Nil(t, resp)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("StoreFailure", func(t *testing.T) {
		svc, mockRepo, _ := setupTestService(t)
		ctx := context.Background()
		cause := errors.New("connection refused")
		mockRepo.On("GetByID", ctx, userID).Return(nil, cause)

		resp, err := svc.GetProfile(ctx, GetProfileRequest{ID: userID})
		assert.Nil(t, resp)
		assert.True(t, apperrors.IsInternal(err))
		assert.ErrorIs(t, err, cause)
	})
}
