package user

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "todo-user-service/internal/domain/user"
	apperrors "todo-user-service/pkg/errors"
	"todo-user-service/pkg/logger"
	"todo-user-service/pkg/security"
)

// Login failure messages, returned to clients verbatim.
const (
	MsgCredentialsRequired = "Username and password are required."
	MsgUserNotFound        = "User not found."
	MsgInvalidPassword     = "Invalid password."
)

// Repository defines the interface for user data access operations.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// Service implements the business logic for account management.
type Service struct {
	repo     Repository
	hasher   *security.PasswordHasher
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new Service. Pass a caching Repository to serve profile
// lookups from Redis.
func New(r Repository, hasher *security.PasswordHasher, log *zap.Logger) *Service {
	return &Service{repo: r, hasher: hasher, log: log, validate: validator.New()}
}

// Signup hashes the password and stores a new account.
func (s *Service) Signup(ctx context.Context, in SignupRequest) (*UserResponse, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("creating user", zap.String("username", in.Username), zap.String("email", in.Email))

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, &domain.User{
		FName:        in.FName,
		LName:        in.LName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			log.Info("username or email already taken", zap.String("username", in.Username))
			return nil, err
		}
		log.Warn("failed to create user", zap.String("username", in.Username), zap.Error(err))
		return nil, err
	}

	return toUserResponse(u), nil
}

// UpdateUser replaces all fields of an existing account, rehashing the password.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*UserResponse, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("updating user", zap.String("id", in.ID), zap.String("username", in.Username))

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Update(ctx, &domain.User{
		ID:           in.ID,
		FName:        in.FName,
		LName:        in.LName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			log.Info("username or email already taken", zap.String("id", in.ID), zap.String("username", in.Username))
			return nil, err
		}
		log.Warn("failed to update user", zap.String("id", in.ID), zap.Error(err))
		return nil, err
	}

	return toUserResponse(u), nil
}

// DeleteUser removes an account and, through the store, its todo items.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) error {
	log := logger.WithContext(ctx, s.log)
	log.Info("deleting user", zap.String("id", in.ID))

	if err := s.repo.Delete(ctx, in.ID); err != nil {
		log.Warn("failed to delete user", zap.String("id", in.ID), zap.Error(err))
		return err
	}
	return nil
}

// Login checks the password against the hash stored on the named account.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*LoginResponse, error) {
	log := logger.WithContext(ctx, s.log)

	if err := s.validate.Struct(in); err != nil {
		return nil, apperrors.NewValidationError("", MsgCredentialsRequired)
	}

	u, err := s.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.Info("user not found", zap.String("username", in.Username))
			return nil, apperrors.NewNotFoundError("user", MsgUserNotFound)
		}
		log.Error("error during login", zap.String("username", in.Username), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to look up user", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		if errors.Is(err, security.ErrPasswordMismatch) {
			log.Info("invalid password for user", zap.String("username", in.Username))
			return nil, apperrors.NewUnauthorizedError(MsgInvalidPassword)
		}
		log.Error("error during login", zap.String("username", in.Username), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to verify password", err)
	}

	log.Info("login successful for user", zap.String("username", in.Username))
	return &LoginResponse{ID: u.ID, Username: u.Username, Email: u.Email}, nil
}

// GetProfile returns the public fields of an account.
func (s *Service) GetProfile(ctx context.Context, in GetProfileRequest) (*ProfileResponse, error) {
	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		logger.WithContext(ctx, s.log).Error("error fetching user data", zap.String("id", in.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to fetch user", err)
	}
	return &ProfileResponse{ID: u.ID, Email: u.Email, Username: u.Username}, nil
}

func toUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		FName:    u.FName,
		LName:    u.LName,
		Username: u.Username,
		Email:    u.Email,
	}
}
