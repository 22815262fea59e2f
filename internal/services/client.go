package services

import "context"

// AnalysisClient sends one prompt to an LLM provider and returns the raw text
// of its answer. The API key is supplied on every call and never retained.
type AnalysisClient interface {
	Send(ctx context.Context, prompt, apiKey string) (string, error)
}
