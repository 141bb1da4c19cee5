package embedding

import (
	"context"
	"fmt"
	"strings"
)

// ClientConfig carries the settings needed to build a concrete embedding client.
type ClientConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// NewClient builds an embedding client for the configured provider.
func NewClient(ctx context.Context, cfg ClientConfig) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))

	switch provider {
	case "", "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}
}
