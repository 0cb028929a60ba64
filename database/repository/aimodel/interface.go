package aimodelRepo

import (
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// AIModelRepository defines data access for chat-widget model configuration
// records managed from the admin dashboard.
type AIModelRepository interface {
	// GetByID retrieves a model config by its unique ID.
	GetByID(id string) (*models.AIModelConfig, error)
	// GetAll retrieves all model configs.
	GetAll() ([]models.AIModelConfig, error)
	// Upsert inserts or replaces a model config record.
	Upsert(cfg *models.AIModelConfig) error
	// Delete removes a model config record by its ID.
	Delete(id string) error
}
