package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gal07/ramadhan-tracker/internal/adapters/handler/http/middleware"
	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

type LogHandler struct {
	svc *services.LogService
}

func NewLogHandler(svc *services.LogService) *LogHandler {
	return &LogHandler{svc: svc}
}

type upsertLogRequest struct {
	Activities domain.ActivityMap `json:"activities" binding:"required"`
}

func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.GET("", h.List)
		logs.GET("/:date", h.GetByDate)
		logs.PUT("/:date", h.Upsert)
		logs.DELETE("/:date", h.Delete)
	}

	router.GET("/catalog", h.Catalog)
}

// Catalog returns the default checklist plus the season window the UI
// renders its day picker from. The template is the same checklist in
// submittable form, every item pending.
func (h *LogHandler) Catalog(c *gin.Context) {
	season := h.svc.Season()
	c.JSON(http.StatusOK, gin.H{
		"season_start": season.Start.Format(domain.DateLayout),
		"season_end":   season.End().Format(domain.DateLayout),
		"activities":   domain.DefaultCatalog,
		"template":     domain.DefaultActivities(),
	})
}

func (h *LogHandler) Upsert(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	var req upsertLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	log, err := h.svc.Upsert(c.Request.Context(), services.UpsertLogInput{
		UserEmail:  email,
		Date:       date,
		Activities: req.Activities,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDateOutOfSeason):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "date is outside the tracking season"})
		case errors.Is(err, domain.ErrInvalidStatus),
			errors.Is(err, domain.ErrActivityNameReq),
			errors.Is(err, domain.ErrCategoryRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, log)
}

func (h *LogHandler) GetByDate(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	log, err := h.svc.GetByDate(c.Request.Context(), email, date)
	if err != nil {
		if errors.Is(err, domain.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no log for this date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, log)
}

func (h *LogHandler) List(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	logs, err := h.svc.ListByUser(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (h *LogHandler) Delete(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), email, date); err != nil {
		if errors.Is(err, domain.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no log for this date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
