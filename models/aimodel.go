package models

import "time"

// AIModelConfig holds the configuration for one chat-widget model entry as
// managed from the admin dashboard. The scheduler never calls the model
// itself; it only stores and serves this configuration.
type AIModelConfig struct {
	ID          string    `bson:"id" json:"id"`
	Provider    string    `bson:"provider" json:"provider"` // e.g. "openai", "anthropic"
	ModelName   string    `bson:"modelName" json:"modelName"`
	APIKey      string    `bson:"apiKey" json:"apiKey,omitempty"`
	Temperature float64   `bson:"temperature" json:"temperature"`
	MaxTokens   int       `bson:"maxTokens" json:"maxTokens"`
	Enabled     bool      `bson:"enabled" json:"enabled"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Masked returns a copy safe for listing: all but the last four characters
// of the API key are redacted.
func (c AIModelConfig) Masked() AIModelConfig {
	if n := len(c.APIKey); n > 4 {
		c.APIKey = "••••" + c.APIKey[n-4:]
	}
	return c
}
