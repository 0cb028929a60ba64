package admin

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// UpsertModelConfig inserts or replaces a chat-widget model configuration.
// A missing ID means a new entry.
func (s *DefaultAdminService) UpsertModelConfig(cfg models.AIModelConfig) (*models.AIModelConfig, error) {
	if strings.TrimSpace(cfg.Provider) == "" || strings.TrimSpace(cfg.ModelName) == "" {
		return nil, fmt.Errorf("provider and modelName are required")
	}
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}

	// An upsert without a key keeps the stored one rather than wiping it.
	if cfg.APIKey == "" {
		if existing, err := s.Models.GetByID(cfg.ID); err == nil {
			cfg.APIKey = existing.APIKey
		}
	}

	if err := s.Models.Upsert(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetModelConfigs lists model configurations with masked API keys.
func (s *DefaultAdminService) GetModelConfigs() ([]models.AIModelConfig, error) {
	cfgs, err := s.Models.GetAll()
	if err != nil {
		return nil, err
	}
	masked := make([]models.AIModelConfig, len(cfgs))
	for i, c := range cfgs {
		masked[i] = c.Masked()
	}
	return masked, nil
}

// DeleteModelConfig removes a model configuration.
func (s *DefaultAdminService) DeleteModelConfig(id string) error {
	return s.Models.Delete(id)
}
