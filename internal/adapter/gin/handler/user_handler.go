package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todo-user-service/internal/usecase/user"
	apperrors "todo-user-service/pkg/errors"
	"todo-user-service/pkg/logger"
)

// UserHandler handles HTTP requests for account operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UserRequest is the body of POST /signup and PUT /user/:id
type UserRequest struct {
	LName    string `json:"lname"`
	FName    string `json:"fname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse represents a stored account
type UserResponse struct {
	ID       string `json:"id"`
	FName    string `json:"fname"`
	LName    string `json:"lname"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProfileResponse is returned by GET /todo/:id
type ProfileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Signup handles POST /signup
func (h *UserHandler) Signup(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reqLog(c).Warn("invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.uc.Signup(c.Request.Context(), user.SignupRequest{
		FName:    req.FName,
		LName:    req.LName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(resp))
}

// UpdateUser handles PUT /user/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reqLog(c).Warn("invalid update user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.uc.UpdateUser(c.Request.Context(), user.UpdateUserRequest{
		ID:       c.Param("id"),
		FName:    req.FName,
		LName:    req.LName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(resp))
}

// DeleteUser handles DELETE /user/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: c.Param("id")}); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Login handles POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reqLog(c).Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: user.MsgCredentialsRequired})
		return
	}

	resp, err := h.uc.Login(c.Request.Context(), user.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var (
			validationErr   *apperrors.ValidationError
			notFoundErr     *apperrors.NotFoundError
			unauthorizedErr *apperrors.UnauthorizedError
			internalErr     *apperrors.InternalError
		)
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: validationErr.Message})
		case errors.As(err, &notFoundErr):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: notFoundErr.Error()})
		case errors.As(err, &unauthorizedErr):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: unauthorizedErr.Error()})
		case errors.As(err, &internalErr):
			h.reqLog(c).Error("login failed", zap.String("username", req.Username), zap.Error(internalErr.Err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error", Details: internalErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error", Details: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{ID: resp.ID, Username: resp.Username, Email: resp.Email})
}

// GetProfile handles GET /todo/:id, which looks up an account rather than a todo item
func (h *UserHandler) GetProfile(c *gin.Context) {
	resp, err := h.uc.GetProfile(c.Request.Context(), user.GetProfileRequest{ID: c.Param("id")})
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		if apperrors.IsInternal(err) {
			h.reqLog(c).Error("profile lookup failed", zap.String("id", c.Param("id")), zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An error occurred", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{ID: resp.ID, Email: resp.Email, Username: resp.Username})
}

func (h *UserHandler) reqLog(c *gin.Context) *zap.Logger {
	return logger.WithContext(c.Request.Context(), h.log)
}

func toUserResponse(u *user.UserResponse) UserResponse {
	return UserResponse{
		ID:       u.ID,
		FName:    u.FName,
		LName:    u.LName,
		Username: u.Username,
		Email:    u.Email,
	}
}
