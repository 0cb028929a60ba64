package admin

import (
	aimodelRepo "github.com/CorprexAhmed/Corprex-Scheduler/database/repository/aimodel"
	userRepo "github.com/CorprexAhmed/Corprex-Scheduler/database/repository/user"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// AdminService defines the dashboard backend: account management, sign-in,
// and chat-widget model configuration.
type AdminService interface {
	// Authenticate verifies credentials and returns a signed session token.
	Authenticate(email, password string) (string, *models.AdminUser, error)

	// CreateUser registers a new dashboard account.
	CreateUser(input models.AdminUserInput) (*models.AdminUser, error)
	// GetAllUsers returns all dashboard accounts.
	GetAllUsers() ([]models.AdminUser, error)
	// UpdateUser modifies a dashboard account.
	UpdateUser(id string, input models.AdminUserInput) (*models.AdminUser, error)
	// DeleteUser removes a dashboard account.
	DeleteUser(id string) error

	// UpsertModelConfig inserts or replaces a model configuration.
	UpsertModelConfig(cfg models.AIModelConfig) (*models.AIModelConfig, error)
	// GetModelConfigs lists model configurations with masked API keys.
	GetModelConfigs() ([]models.AIModelConfig, error)
	// DeleteModelConfig removes a model configuration.
	DeleteModelConfig(id string) error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users  userRepo.UserRepository
	Models aimodelRepo.AIModelRepository
}
