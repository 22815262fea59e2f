package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiTestServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, &hits
}

func newTestGeminiClient(baseURL string) AnalysisClient {
	return NewGeminiClient(GeminiClientConfig{
		Model:       "gemini-test",
		Temperature: 0.3,
		BaseURL:     baseURL,
	})
}

func TestGeminiSend(t *testing.T) {
	server, hits := newGeminiTestServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"match_score\": 80}"}]},"finishReason":"STOP"}]}`)

	text, err := newTestGeminiClient(server.URL).Send(context.Background(), "prompt", "test-key")
	require.NoError(t, err)
	assert.Equal(t, `{"match_score": 80}`, text)
	assert.Equal(t, int32(1), hits.Load())
}

func TestGeminiSendWithoutKey(t *testing.T) {
	server, hits := newGeminiTestServer(t, http.StatusOK, `{}`)

	_, err := newTestGeminiClient(server.URL).Send(context.Background(), "prompt", "")
	assert.ErrorIs(t, err, ErrAuth)
	assert.Zero(t, hits.Load())
}

func TestGeminiSendRejectedKey(t *testing.T) {
	server, _ := newGeminiTestServer(t, http.StatusUnauthorized,
		`{"error":{"code":401,"message":"API key not valid.","status":"UNAUTHENTICATED"}}`)

	_, err := newTestGeminiClient(server.URL).Send(context.Background(), "prompt", "test-key")
	assert.ErrorIs(t, err, ErrAuth)
	assert.False(t, IsRetryable(err))
}

func TestGeminiSendServerError(t *testing.T) {
	server, _ := newGeminiTestServer(t, http.StatusInternalServerError,
		`{"error":{"code":500,"message":"internal error","status":"INTERNAL"}}`)

	_, err := newTestGeminiClient(server.URL).Send(context.Background(), "prompt", "test-key")
	assert.ErrorIs(t, err, ErrAPI)
	assert.True(t, IsRetryable(err))
}

func TestGeminiSendBadRequest(t *testing.T) {
	server, _ := newGeminiTestServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"model does not support this request","status":"INVALID_ARGUMENT"}}`)

	_, err := newTestGeminiClient(server.URL).Send(context.Background(), "prompt", "test-key")
	assert.ErrorIs(t, err, ErrAPI)
	assert.NotErrorIs(t, err, ErrAuth)
	assert.False(t, IsRetryable(err))
}

func TestGeminiSendEmptyResponse(t *testing.T) {
	server, _ := newGeminiTestServer(t, http.StatusOK, `{"candidates":[]}`)

	_, err := newTestGeminiClient(server.URL).Send(context.Background(), "prompt", "test-key")
	assert.ErrorIs(t, err, ErrAPI)
	assert.False(t, IsRetryable(err))
}
