package stock

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

// RegisterRoutes wires read access for any authenticated user.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	stock := r.Group("/stock")
	{
		stock.GET("", h.List)
		stock.GET("/summary", h.Summary)
	}
}

// RegisterHospitalRoutes wires the mutating endpoints; the router gates the
// group to the hospital role.
func (h *Handler) RegisterHospitalRoutes(r *gin.RouterGroup) {
	stock := r.Group("/stock")
	{
		stock.POST("", h.Create)
		stock.PATCH("/:id", h.Update)
		stock.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.ListStock(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}

func (h *Handler) Summary(c *gin.Context) {
	total, err := h.svc.TotalStockUnits(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"total_units": total}))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	item, err := h.svc.AddStock(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(item))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid stock id"))
		return
	}

	var req model.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	item, err := h.svc.UpdateStock(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(item))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid stock id"))
		return
	}

	if err := h.svc.DeleteStock(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse("stock deleted"))
}
