package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const systemPrompt = "You are a helpful assistant that summarizes transcripts of YouTube videos. Your response are to be rendered in a Youtube Note Manager application, so skip preamble and followup question, just the main content itself. Use Markdown format. Write in an easy to read and digest manner. Prioritize readability over succinctness."

// Service calls an OpenAI-compatible chat completions API through OpenRouter.
type Service struct {
	apiKey  string
	baseURL string
	model   string
}

func NewService(apiKey, baseURL, model string) *Service {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if model == "" {
		model = "openai/gpt-5-chat"
	}
	return &Service{apiKey: apiKey, baseURL: baseURL, model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SummarizeTranscript sends the transcript as the sole user message and
// returns the model's markdown summary.
func (s *Service) SummarizeTranscript(ctx context.Context, transcript string) (string, error) {
	url := s.baseURL + "/chat/completions"

	payload := map[string]interface{}{
		"model": s.model,
		"messages": []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: transcript},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no summary returned")
	}
	return result.Choices[0].Message.Content, nil
}
