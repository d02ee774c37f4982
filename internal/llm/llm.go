// Package llm wraps the supported model providers behind a single
// text-in, text-out client interface.
package llm

import (
	"context"

	"github.com/huangsam/sdrfbench/schema"
)

// Client generates a completion for a prompt. Implementations are safe for
// concurrent use.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config selects and configures a provider client.
type Config struct {
	Provider schema.Provider
	Model    string
	APIKey   string
	BaseURL  string // Optional endpoint override, used for OpenAI-compatible gateways
}
