package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAnalysisClient struct {
	mock.Mock
}

func (m *MockAnalysisClient) Send(ctx context.Context, prompt, apiKey string) (string, error) {
	args := m.Called(ctx, prompt, apiKey)

	return args.String(0), args.Error(1)
}
