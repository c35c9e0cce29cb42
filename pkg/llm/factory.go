package llm

import (
	"go.uber.org/zap"
)

// Config holds provider configuration.
type Config struct {
	// OpenAI config. When APIKey is empty the factory returns the mock client.
	APIKey string
	Model  string
}

// NewClient creates a Client based on the config. Mock mode is not a test
// stub: a deployment without credentials serves every request from it.
func NewClient(cfg Config, logger *zap.Logger) Client {
	if cfg.APIKey == "" {
		logger.Warn("no LLM provider configured, using mock mode")
		return NewMockClient()
	}

	logger.Info("LLM provider configured",
		zap.String("provider", string(ProviderOpenAI)),
		zap.String("model", cfg.Model))
	return NewOpenAIClient(cfg.APIKey, cfg.Model, logger)
}
