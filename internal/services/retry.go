package services

import (
	"context"
	"fmt"
	"log"
	"time"
)

type retryingClient struct {
	next         AnalysisClient
	maxAttempts  int
	initialDelay time.Duration
	timeout      time.Duration
}

// NewRetryingClient wraps next so that every attempt runs under timeout and
// transient failures are retried with exponential backoff, up to maxAttempts
// calls in total.
func NewRetryingClient(next AnalysisClient, maxAttempts int, initialDelay, timeout time.Duration) AnalysisClient {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &retryingClient{
		next:         next,
		maxAttempts:  maxAttempts,
		initialDelay: initialDelay,
		timeout:      timeout,
	}
}

// Send implements AnalysisClient.
func (r *retryingClient) Send(ctx context.Context, prompt, apiKey string) (string, error) {
	var lastErr error
	delay := r.initialDelay

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		result, err := r.attempt(ctx, prompt, apiKey)
		if err == nil {
			return result, nil
		}

		lastErr = err
		if !IsRetryable(err) {
			return "", err
		}

		if attempt == r.maxAttempts {
			break
		}

		log.Printf("⚠️ Attempt %d/%d failed: %v. Retrying in %s...", attempt, r.maxAttempts, err, delay)

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: context cancelled: %w", ErrAPI, ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}

	return "", fmt.Errorf("failed after %d attempts: %w", r.maxAttempts, lastErr)
}

func (r *retryingClient) attempt(ctx context.Context, prompt, apiKey string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	return r.next.Send(ctx, prompt, apiKey)
}
