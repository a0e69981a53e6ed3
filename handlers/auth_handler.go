package handlers

import (
	"errors"
	"net/http"

	"roomspace-backend/config"
	"roomspace-backend/repository"
	"roomspace-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	auth   *service.AuthService
	cfg    *config.Config
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		cfg:    cfg,
		logger: logger,
	}
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "User already exists with this email",
		})
		return
	}
	if err != nil {
		h.logger.Error("registration failed", zap.String("operation", "register"), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create user",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Invalid credentials",
		})
		return
	}
	if err != nil {
		h.logger.Error("login failed", zap.String("operation", "login"), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// GoogleAuth handles POST /api/auth/google. OAuth is not wired up; the
// endpoint reports whether it is even configured.
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	if !h.cfg.ServiceAvailable("google") {
		c.JSON(http.StatusNotImplemented, gin.H{
			"message": "Google authentication not configured",
			"details": "Missing GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables",
		})
		return
	}

	c.JSON(http.StatusNotImplemented, gin.H{
		"message": "Google authentication not implemented yet",
		"details": "OAuth integration requires additional implementation",
	})
}

// AppleAuth handles POST /api/auth/apple
func (h *AuthHandler) AppleAuth(c *gin.Context) {
	if !h.cfg.ServiceAvailable("apple") {
		c.JSON(http.StatusNotImplemented, gin.H{
			"message": "Apple Sign In not configured",
			"details": "Missing APPLE_CLIENT_ID, APPLE_KEY_ID, and APPLE_TEAM_ID environment variables",
		})
		return
	}

	c.JSON(http.StatusNotImplemented, gin.H{
		"message": "Apple authentication not implemented yet",
		"details": "Apple Sign In integration requires additional implementation",
	})
}
