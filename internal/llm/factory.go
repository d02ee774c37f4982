package llm

import (
	"context"
	"fmt"

	"github.com/huangsam/sdrfbench/schema"
)

// NewClient builds the provider client described by the config.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case schema.OpenAIProvider:
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case schema.ClaudeProvider:
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case schema.GeminiProvider:
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
