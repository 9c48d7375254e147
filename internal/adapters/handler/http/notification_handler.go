package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gal07/ramadhan-tracker/internal/adapters/handler/http/middleware"
	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

type NotificationHandler struct {
	svc *services.NotificationService
}

func NewNotificationHandler(svc *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

type saveTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type sendTestRequest struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.POST("/token", h.SaveToken)
		notifications.POST("/send", h.SendTest)
	}
}

func (h *NotificationHandler) SaveToken(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req saveTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.svc.SaveToken(c.Request.Context(), email, req.Token, c.Request.UserAgent()); err != nil {
		if errors.Is(err, domain.ErrTokenRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "token registered"})
}

// SendTest pushes to the caller's own devices so the user can verify
// their browser permission grant actually delivers.
func (h *NotificationHandler) SendTest(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req sendTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Title == "" {
		req.Title = "Ramadhan Tracker"
	}
	if req.Body == "" {
		req.Body = "Notifikasi berhasil diaktifkan"
	}

	receipt, err := h.svc.Send(c.Request.Context(), email, req.Title, req.Body, req.Data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDeviceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no registered devices"})
			return
		case errors.Is(err, services.ErrPushDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications are not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": receipt.Success,
		"failure": receipt.Failure,
	})
}
