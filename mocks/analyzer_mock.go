package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/talent-analyzer/internal/models"
)

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) AnalyzeResume(ctx context.Context, doc *models.Document, jobDescription string) (*models.ResumeAnalysis, error) {
	args := m.Called(ctx, doc, jobDescription)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ResumeAnalysis), args.Error(1)
}

func (m *MockAnalyzer) AnalyzeFeedback(ctx context.Context, feedbackText string) (*models.FeedbackAnalysis, error) {
	args := m.Called(ctx, feedbackText)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.FeedbackAnalysis), args.Error(1)
}
