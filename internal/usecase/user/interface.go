package user

import "context"

// Usecase defines the interface for user business logic operations.
type Usecase interface {
	Signup(ctx context.Context, in SignupRequest) (*UserResponse, error)
	UpdateUser(ctx context.Context, in UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, in DeleteUserRequest) error
	Login(ctx context.Context, in LoginRequest) (*LoginResponse, error)
	GetProfile(ctx context.Context, in GetProfileRequest) (*ProfileResponse, error)
}
