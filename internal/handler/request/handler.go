package request

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/handler"
	"github.com/sanjeevani/coordination-api/internal/middleware"
	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/internal/service/resource"
)

type Handler struct {
	svc *resource.Service
}

func NewHandler(svc *resource.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes wires the emergency endpoint, reachable without a
// session: an emergency caller may not have an account.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	{
		requests.POST("/emergency", h.SubmitEmergency)
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	{
		requests.GET("", h.List)
		requests.POST("", h.Create)
	}
}

func (h *Handler) RegisterHospitalRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	{
		requests.PATCH("/:id/status", h.UpdateStatus)
	}
	r.GET("/dashboard/stats", h.Stats)
}

// List returns all requests for hospital users. Everyone else sees only
// requests matching their own phone number, or an explicit ?contact= filter.
func (h *Handler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	contact := c.Query("contact")

	if user != nil && user.Role != model.RoleHospital && contact == "" {
		contact = user.Phone
	}

	var (
		requests []*model.MedicalRequest
		err      error
	)
	if user != nil && user.Role == model.RoleHospital && contact == "" {
		requests, err = h.svc.ListRequests(c.Request.Context())
	} else {
		requests, err = h.svc.RequestsForContact(c.Request.Context(), contact)
	}
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(requests))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	request, err := h.svc.AddRequest(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(request))
}

func (h *Handler) SubmitEmergency(c *gin.Context) {
	var req model.EmergencyRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	request, err := h.svc.SubmitEmergency(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(request))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid request id"))
		return
	}

	var req model.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	request, err := h.svc.UpdateRequestStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(request))
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}
