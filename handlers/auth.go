package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starkdipesh/portfolio-api/internal/config"
	"github.com/starkdipesh/portfolio-api/internal/models"
	"github.com/starkdipesh/portfolio-api/internal/tokens"
	"github.com/starkdipesh/portfolio-api/pkg/logger"
	"github.com/starkdipesh/portfolio-api/pkg/middleware"
)

// AuthHandler exposes the shared-password login and a token check endpoint
// the admin frontend uses to decide whether a stored token is still good.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.GET("/verify", middleware.RequireAdmin(h.cfg), h.Verify)
}

// Login exchanges the admin password for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !tokens.CheckPassword(h.cfg, req.Password) {
		logger.Warnf("failed admin login attempt from %s", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}
	token, err := tokens.GenerateAdminToken(h.cfg)
	if err != nil {
		logger.Errorf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Verify reports that the presented token passed the auth middleware.
func (h *AuthHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"valid": true})
}
