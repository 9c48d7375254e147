package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gal07/ramadhan-tracker/internal/adapters/handler/http/middleware"
	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

type AuthHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
}

func NewAuthHandler(authService *services.AuthService, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type googleAuthRequest struct {
	Code string `json:"code" binding:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Picture  string `json:"picture,omitempty"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/google", h.GoogleAuth)
	}
}

// RegisterProtectedRoutes attaches the routes that need a valid token.
func (h *AuthHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/auth/me", h.Me)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.respondWithToken(c, user)
}

func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req googleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.LoginWithGoogle(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "google sign-in failed"})
		return
	}

	h.respondWithToken(c, user)
}

func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email": email,
		"name":  middleware.GetUserName(c),
	})
}

func (h *AuthHandler) respondWithToken(c *gin.Context, user *domain.User) {
	token, err := h.tokenService.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token: token,
		User: userResponse{
			ID:       user.ID,
			Email:    user.Email,
			Name:     user.Name,
			Provider: user.Provider,
			Picture:  user.Picture,
		},
	})
}
