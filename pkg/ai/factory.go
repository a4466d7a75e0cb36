package ai

import (
	"fmt"

	"ytnote/pkg/openrouter"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "openrouter" or "ollama"

	// OpenRouter config
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewSummarizer creates a Summarizer based on the config
// This is the factory function - switch AI provider by changing config.Provider
func NewSummarizer(cfg Config) (Summarizer, error) {
	switch cfg.Provider {
	case ProviderOpenRouter:
		if cfg.OpenRouterAPIKey == "" {
			return nil, fmt.Errorf("OPENROUTER_API_KEY is required for OpenRouter provider")
		}
		return openrouter.NewService(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.OpenRouterModel), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		// Default to OpenRouter if API key is available, otherwise Ollama
		if cfg.OpenRouterAPIKey != "" {
			return openrouter.NewService(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.OpenRouterModel), nil
		}
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	}
}
