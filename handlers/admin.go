package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samara-logia/cadaster-portal/internal/auth"
	"github.com/samara-logia/cadaster-portal/internal/config"
	"github.com/samara-logia/cadaster-portal/internal/tokens"
	"github.com/samara-logia/cadaster-portal/pkg/logger"
)

// LoginRequest carries the office-staff credential pair
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminHandler holds dependencies
type AdminHandler struct {
	cfg     *config.Config
	checker auth.CredentialChecker
}

func NewAdminHandler(cfg *config.Config, checker auth.CredentialChecker) *AdminHandler {
	return &AdminHandler{cfg: cfg, checker: checker}
}

// Register routes under /api/admin
func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/api/admin")
	a.POST("/login", h.Login)
}

// Login exchanges the configured credential pair for a short-lived token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.checker.Check(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := tokens.GenerateAdminToken(h.cfg, req.Username, h.cfg.JWT.AccessTokenTTL)
	if err != nil {
		logger.Errorf("failed to sign admin token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(h.cfg.JWT.AccessTokenTTL.Seconds()),
	})
}
