package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gal07/ramadhan-tracker/internal/adapters/handler/http/middleware"
	"github.com/gal07/ramadhan-tracker/internal/core/analytics"
	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats/report", h.GetReport)
	router.GET("/friends/:email/report", h.GetFriendReport)
}

func (h *StatsHandler) GetReport(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	report, err := h.svc.GetReport(c.Request.Context(), email)
	if err != nil {
		h.respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *StatsHandler) GetFriendReport(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	report, err := h.svc.GetFriendReport(c.Request.Context(), email, c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrFriendNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "friend not found"})
			return
		}
		h.respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *StatsHandler) respondReportError(c *gin.Context, err error) {
	var verr *analytics.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
