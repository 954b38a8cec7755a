package donor

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/handler"
	"github.com/sanjeevani/coordination-api/internal/middleware"
	"github.com/sanjeevani/coordination-api/internal/model"
	donorService "github.com/sanjeevani/coordination-api/internal/service/donor"
)

type Handler struct {
	svc *donorService.Service
}

func NewHandler(svc *donorService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the donor portal endpoints; the router gates the
// group to the donor role.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	donors := r.Group("/donors")
	{
		donors.GET("/eligibility", h.Eligibility)
		donors.GET("/donations", h.Donations)
		donors.GET("/opportunities", h.Opportunities)
		donors.POST("/opportunities/:id/register", h.Register)
	}
}

// Eligibility computes the donor's standing from ?last_donation=YYYY-MM-DD,
// falling back to the most recent recorded donation.
func (h *Handler) Eligibility(c *gin.Context) {
	var lastDonation time.Time

	if raw := c.Query("last_donation"); raw != "" {
		parsed, err := time.Parse(model.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("last_donation must be YYYY-MM-DD"))
			return
		}
		lastDonation = parsed
	} else {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
			return
		}
		last, err := h.svc.LastDonation(c.Request.Context(), user.ID)
		if err != nil {
			handler.Error(c, err)
			return
		}
		if last.IsZero() {
			c.JSON(http.StatusOK, handler.NewSuccessResponse(&model.Eligibility{
				Eligible:      true,
				DaysRemaining: 0,
			}))
			return
		}
		lastDonation = last
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Eligibility(lastDonation)))
}

func (h *Handler) Donations(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	records, err := h.svc.History(c.Request.Context(), user.ID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"donations": records,
		"total":     len(records),
	}))
}

func (h *Handler) Opportunities(c *gin.Context) {
	opps, err := h.svc.Opportunities(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(opps))
}

func (h *Handler) Register(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	oppID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid opportunity id"))
		return
	}

	opp, err := h.svc.RegisterForDonation(c.Request.Context(), oppID, user.ID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(opp))
}
