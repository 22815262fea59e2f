package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClientConfig struct {
	Model       string
	Temperature float32
	BaseURL     string
}

type openAIClient struct {
	model       string
	temperature float32
	baseURL     string
}

func NewOpenAIClient(cfg OpenAIClientConfig) AnalysisClient {
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &openAIClient{
		model:       model,
		temperature: cfg.Temperature,
		baseURL:     cfg.BaseURL,
	}
}

// Send implements AnalysisClient.
func (o *openAIClient) Send(ctx context.Context, prompt, apiKey string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("%w: OpenAI API key is not set", ErrAuth)
	}

	config := openai.DefaultConfig(apiKey)
	if o.baseURL != "" {
		config.BaseURL = o.baseURL
	}
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("❌ OpenAI API error: %v", err)
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: OpenAI returned no choices", ErrAPI)
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response from OpenAI", ErrAPI)
	}

	return text, nil
}

func classifyOpenAIError(err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: request cancelled: %w", ErrAPI, err)
	}

	code := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		code = reqErr.HTTPStatusCode
	default:
		return retryable(fmt.Errorf("%w: openai request failed: %w", ErrAPI, err))
	}

	switch {
	case code == 401 || code == 403:
		return fmt.Errorf("%w: openai rejected the API key: %w", ErrAuth, err)
	case code == 429 || code >= 500:
		return retryable(fmt.Errorf("%w: openai returned status %d: %w", ErrAPI, code, err))
	default:
		return fmt.Errorf("%w: openai returned status %d: %w", ErrAPI, code, err)
	}
}
