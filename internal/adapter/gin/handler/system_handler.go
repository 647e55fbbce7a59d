package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Greeting is the fixed body of GET /api/message
const Greeting = "Hello from the todo-user-service server!"

// SystemHandler serves the static greeting and the liveness probe
type SystemHandler struct {
	service string
}

// NewSystemHandler creates a SystemHandler reporting the given service name
func NewSystemHandler(service string) *SystemHandler {
	return &SystemHandler{service: service}
}

// Message handles GET /api/message
func (h *SystemHandler) Message(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: Greeting})
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Service: h.service})
}
