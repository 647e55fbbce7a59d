package user

// SignupRequest represents the request payload for creating a new account.
type SignupRequest struct {
	FName    string
	LName    string
	Username string
	Email    string
	Password string
}

// UpdateUserRequest replaces every field of the account identified by ID.
type UpdateUserRequest struct {
	ID       string
	FName    string
	LName    string
	Username string
	Email    string
	Password string
}

// DeleteUserRequest represents the request payload for deleting an account.
type DeleteUserRequest struct {
	ID string
}

// LoginRequest represents a credential check.
type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	ID       string
	Username string
	Email    string
}

// GetProfileRequest represents the request payload for a profile lookup.
type GetProfileRequest struct {
	ID string
}

// ProfileResponse is the public subset of an account.
type ProfileResponse struct {
	ID       string
	Email    string
	Username string
}

// UserResponse represents a stored account without its password.
type UserResponse struct {
	ID       string
	FName    string
	LName    string
	Username string
	Email    string
}
