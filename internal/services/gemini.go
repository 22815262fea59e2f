package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

type GeminiClientConfig struct {
	Model       string
	Temperature float32
	// BaseURL overrides the Gemini API endpoint. Empty means the default.
	BaseURL string
}

type geminiClient struct {
	model       string
	temperature float32
	baseURL     string
}

func NewGeminiClient(cfg GeminiClientConfig) AnalysisClient {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &geminiClient{
		model:       model,
		temperature: cfg.Temperature,
		baseURL:     cfg.BaseURL,
	}
}

// Send implements AnalysisClient.
func (g *geminiClient) Send(ctx context.Context, prompt, apiKey string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("%w: Gemini API key is not set", ErrAuth)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create gemini client: %w", ErrAPI, err)
	}

	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  4096,
		ResponseMIMEType: "application/json",
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", classifyGeminiError(err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: no response generated (nil response)", ErrAPI)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response from Gemini", ErrAPI)
	}

	return text, nil
}

func classifyGeminiError(err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: request cancelled: %w", ErrAPI, err)
	}

	code, message, ok := geminiErrorDetails(err)
	if !ok {
		return retryable(fmt.Errorf("%w: gemini request failed: %w", ErrAPI, err))
	}

	switch {
	case code == 401 || code == 403:
		return fmt.Errorf("%w: gemini rejected the API key: %w", ErrAuth, err)
	case code == 400 && strings.Contains(strings.ToLower(message), "api key"):
		return fmt.Errorf("%w: gemini rejected the API key: %w", ErrAuth, err)
	case code == 429 || code >= 500:
		return retryable(fmt.Errorf("%w: gemini returned status %d: %w", ErrAPI, code, err))
	default:
		return fmt.Errorf("%w: gemini returned status %d: %w", ErrAPI, code, err)
	}
}

func geminiErrorDetails(err error) (int, string, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Message, true
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code, apiErrPtr.Message, true
	}

	return 0, "", false
}
