package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanjeevani/coordination-api/internal/handler"
	"github.com/sanjeevani/coordination-api/internal/middleware"
	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/internal/service/identity"
)

type Handler struct {
	svc identity.IdentityService
}

func NewHandler(svc identity.IdentityService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)
	}
}

// RegisterProtectedRoutes wires the endpoints that need a session.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", h.Me)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	session, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	session, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(session))
}

func (h *Handler) Logout(c *gin.Context) {
	h.svc.Logout(c.Request.Context())
	c.JSON(http.StatusOK, handler.NewSuccessResponse("logged out"))
}

func (h *Handler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(user))
}
