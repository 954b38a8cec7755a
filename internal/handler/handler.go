package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler carries the cross-cutting endpoints (health checks)
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "alive"}))
}

// ReadinessCheck reports ready unconditionally; all state is in memory and
// available as soon as the process is.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "ready"}))
}
