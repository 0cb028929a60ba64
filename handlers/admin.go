// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/admin"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Service admin.AdminService
	Usage   admin.UsageService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.AdminService, usage admin.UsageService) *AdminHandler {
	return &AdminHandler{Service: svc, Usage: usage}
}

// LoginHandler signs an admin in and returns a session token.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var creds models.AdminCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	token, user, err := ah.Service.Authenticate(creds.Email, creds.Password)
	if errors.Is(err, admin.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err != nil {
		zap.L().Error("admin sign-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-in failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GetAllUsersHandler returns all dashboard accounts.
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.Service.GetAllUsers()
	if err != nil {
		zap.L().Error("Failed to fetch admin users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateUserHandler registers a new dashboard account.
func (ah *AdminHandler) CreateUserHandler(c *gin.Context) {
	var input models.AdminUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, err := ah.Service.CreateUser(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// UpdateUserHandler modifies a dashboard account.
func (ah *AdminHandler) UpdateUserHandler(c *gin.Context) {
	var input models.AdminUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, err := ah.Service.UpdateUser(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUserHandler removes a dashboard account.
func (ah *AdminHandler) DeleteUserHandler(c *gin.Context) {
	if err := ah.Service.DeleteUser(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetModelsHandler lists chat-widget model configs with masked keys.
func (ah *AdminHandler) GetModelsHandler(c *gin.Context) {
	cfgs, err := ah.Service.GetModelConfigs()
	if err != nil {
		zap.L().Error("Failed to fetch model configs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch model configs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": cfgs})
}

// UpsertModelHandler inserts or replaces a model config.
func (ah *AdminHandler) UpsertModelHandler(c *gin.Context) {
	var cfg models.AIModelConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := ah.Service.UpsertModelConfig(cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"model": saved.Masked()})
}

// DeleteModelHandler removes a model config.
func (ah *AdminHandler) DeleteModelHandler(c *gin.Context) {
	if err := ah.Service.DeleteModelConfig(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStatsHandler returns usage counters for the dashboard.
//
// GET /api/admin/stats?days=30
func (ah *AdminHandler) GetStatsHandler(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	stats, err := ah.Usage.GetStats(days)
	if err != nil {
		zap.L().Error("Failed to fetch usage stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch usage stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
