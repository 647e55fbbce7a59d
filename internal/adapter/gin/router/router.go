package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"todo-user-service/api"
	"todo-user-service/internal/adapter/gin/handler"
	"todo-user-service/internal/adapter/gin/middleware"
	"todo-user-service/pkg/logger"
)

// OpenAPIPath is where the embedded OpenAPI document is served
const OpenAPIPath = "/openapi.json"

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	userHandler *handler.UserHandler,
	todoHandler *handler.TodoHandler,
	systemHandler *handler.SystemHandler,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(logger.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())

	router.GET("/health", systemHandler.Health)
	router.GET("/api/message", systemHandler.Message)

	// Accounts
	router.POST("/signup", userHandler.Signup)
	router.PUT("/user/:id", userHandler.UpdateUser)
	router.DELETE("/user/:id", userHandler.DeleteUser)
	router.POST("/login", userHandler.Login)

	// Todo items. GET /todo/:id is the account profile lookup.
	router.POST("/todo", todoHandler.CreateItem)
	router.GET("/todo", todoHandler.ListItems)
	router.GET("/todo/:id", userHandler.GetProfile)
	router.DELETE("/todo/:id", todoHandler.DeleteItem)
	router.GET("/todos/:username", todoHandler.ListItemsByOwner)
	router.PUT("/update/:id", todoHandler.UpdateItemName)

	// API docs
	router.GET(OpenAPIPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", api.OpenAPI)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(OpenAPIPath))))

	return router
}
