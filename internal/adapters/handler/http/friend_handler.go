package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/gal07/ramadhan-tracker/internal/adapters/handler/http/middleware"
	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

type FriendHandler struct {
	svc *services.FriendService
}

func NewFriendHandler(svc *services.FriendService) *FriendHandler {
	return &FriendHandler{svc: svc}
}

type addFriendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *FriendHandler) RegisterRoutes(router *gin.RouterGroup) {
	friends := router.Group("/friends")
	{
		friends.GET("", h.List)
		friends.POST("", h.Add)
		friends.DELETE("/:email", h.Remove)
		friends.GET("/qr", h.QRCode)
	}
}

func (h *FriendHandler) Add(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}
	name := middleware.GetUserName(c)

	var req addFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	friend, err := h.svc.Add(c.Request.Context(), services.AddFriendInput{
		OwnerEmail:  email,
		OwnerName:   name,
		FriendEmail: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfFriend):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot add yourself as a friend"})
		case errors.Is(err, domain.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, friend)
}

func (h *FriendHandler) List(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	friends, err := h.svc.List(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, friends)
}

func (h *FriendHandler) Remove(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.svc.Remove(c.Request.Context(), email, c.Param("email")); err != nil {
		if errors.Is(err, domain.ErrFriendNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "friend not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// QRCode renders the caller's email as a PNG so another user can scan
// it to add them. Size is clamped to keep the encoder cheap.
func (h *FriendHandler) QRCode(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	png, err := qrcode.Encode(email, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate qr code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
