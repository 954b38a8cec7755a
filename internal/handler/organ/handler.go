package organ

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/handler"
	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/internal/service/resource"
)

type Handler struct {
	svc *resource.Service
}

func NewHandler(svc *resource.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	organs := r.Group("/organs")
	{
		organs.GET("", h.List)
	}
}

func (h *Handler) RegisterHospitalRoutes(r *gin.RouterGroup) {
	organs := r.Group("/organs")
	{
		organs.POST("", h.Create)
		organs.PATCH("/:id", h.Update)
		organs.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	organs, err := h.svc.ListOrgans(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(organs))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateOrganRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	organ, err := h.svc.AddOrgan(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(organ))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid organ id"))
		return
	}

	var req model.UpdateOrganRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	organ, err := h.svc.UpdateOrgan(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(organ))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid organ id"))
		return
	}

	if err := h.svc.DeleteOrgan(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse("organ record deleted"))
}
