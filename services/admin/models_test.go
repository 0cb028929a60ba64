package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aimodelRepo "github.com/CorprexAhmed/Corprex-Scheduler/database/repository/aimodel"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// fakeModelRepo is an in-memory AIModelRepository.
type fakeModelRepo struct {
	byID map[string]*models.AIModelConfig
}

func newFakeModelRepo() *fakeModelRepo {
	return &fakeModelRepo{byID: make(map[string]*models.AIModelConfig)}
}

func (r *fakeModelRepo) GetByID(id string) (*models.AIModelConfig, error) {
	if c, ok := r.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, aimodelRepo.ErrNotFound
}

func (r *fakeModelRepo) GetAll() ([]models.AIModelConfig, error) {
	out := make([]models.AIModelConfig, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeModelRepo) Upsert(cfg *models.AIModelConfig) error {
	cp := *cfg
	r.byID[cfg.ID] = &cp
	return nil
}

func (r *fakeModelRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return aimodelRepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestUpsertModelConfig(t *testing.T) {
	repo := newFakeModelRepo()
	svc := &DefaultAdminService{Models: repo}

	saved, err := svc.UpsertModelConfig(models.AIModelConfig{
		Provider:    "anthropic",
		ModelName:   "claude-sonnet-4-5",
		APIKey:      "sk-ant-1234567890",
		Temperature: 0.2,
		Enabled:     true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	// Updating without a key keeps the stored one.
	saved.Temperature = 0.7
	saved.APIKey = ""
	again, err := svc.UpsertModelConfig(*saved)
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-1234567890", again.APIKey)
	assert.Equal(t, 0.7, again.Temperature)

	// Listings never expose full keys.
	cfgs, err := svc.GetModelConfigs()
	require.NoError(t, err)
	require.Len(t, cfgs, 1)
	assert.NotContains(t, cfgs[0].APIKey, "1234567")
	assert.Contains(t, cfgs[0].APIKey, "7890")
}

func TestUpsertModelConfigValidation(t *testing.T) {
	svc := &DefaultAdminService{Models: newFakeModelRepo()}

	_, err := svc.UpsertModelConfig(models.AIModelConfig{ModelName: "gpt-4o"})
	assert.Error(t, err)
	_, err = svc.UpsertModelConfig(models.AIModelConfig{Provider: "openai"})
	assert.Error(t, err)
}
