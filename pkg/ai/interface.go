package ai

import "context"

// Summarizer is the interface for transcript summarization.
// Implement this interface to add new AI providers (OpenRouter, Ollama, etc.)
type Summarizer interface {
	SummarizeTranscript(ctx context.Context, transcript string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOllama     ProviderType = "ollama"
	ProviderAuto       ProviderType = "auto"
)
