// Package huggingface is a thin client for the HuggingFace hosted inference
// API. No caching, retry or backpressure; every call is a single upstream
// request.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultModelURL = "https://api-inference.huggingface.co/models/google/flan-t5-large"

type Service struct {
	apiKey   string
	modelURL string
	client   *http.Client
}

// NewService creates a client for the default text-generation model.
func NewService(apiKey string) *Service {
	return &Service{
		apiKey:   apiKey,
		modelURL: defaultModelURL,
		client:   &http.Client{},
	}
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens int `json:"max_new_tokens"`
}

// Generate runs the prompt through the inference endpoint and returns the
// generated text.
func (s *Service) Generate(ctx context.Context, prompt string, maxNewTokens int) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Inputs:     prompt,
		Parameters: generateParameters{MaxNewTokens: maxNewTokens},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.modelURL, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("huggingface API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result) == 0 {
		return "No response from AI.", nil
	}

	return result[0].GeneratedText, nil
}
