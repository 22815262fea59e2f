package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"alfredoptarigan/talent-analyzer/internal/models"
)

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, doc *models.Document, jobDescription string) (*models.ResumeAnalysis, error)
	AnalyzeFeedback(ctx context.Context, feedbackText string) (*models.FeedbackAnalysis, error)
}

type analyzerService struct {
	extractor     TextExtractor
	promptBuilder *PromptBuilder
	client        AnalysisClient
	parser        *ResultParser
	apiKey        string
}

func NewAnalyzerService(
	extractor TextExtractor,
	client AnalysisClient,
	apiKey string,
) AnalyzerService {
	return &analyzerService{
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
		client:        client,
		parser:        NewResultParser(),
		apiKey:        apiKey,
	}
}

func (a *analyzerService) AnalyzeResume(ctx context.Context, doc *models.Document, jobDescription string) (*models.ResumeAnalysis, error) {
	if err := requireText(jobDescription, "job description"); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: resume file is required", ErrInvalidInput)
	}

	log.Printf("📄 Extracting text from %s (%s)...", doc.OriginalFileName, doc.Format)
	resumeText, err := a.extractor.Extract(doc.Path, doc.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	// Extract never returns blank text, so the request is complete here.
	req := models.ResumeRequest{ResumeText: resumeText, JobDescription: jobDescription}

	prompt := a.promptBuilder.BuildResumePrompt(req.ResumeText, req.JobDescription)
	log.Printf("📝 Resume analysis prompt length: %d characters", len(prompt))

	response, err := a.client.Send(ctx, prompt, a.apiKey)
	if err != nil {
		log.Printf("❌ Resume analysis failed: %v", err)
		return nil, fmt.Errorf("failed to generate resume analysis: %w", err)
	}
	log.Printf("✅ Resume analysis response received: %d characters", len(response))

	result, err := a.parser.ParseResume(response)
	if err != nil {
		log.Printf("❌ Failed to parse resume analysis response: %v", err)
		return nil, fmt.Errorf("failed to parse resume analysis response: %w", err)
	}

	return result, nil
}

func (a *analyzerService) AnalyzeFeedback(ctx context.Context, feedbackText string) (*models.FeedbackAnalysis, error) {
	req := models.FeedbackRequest{FeedbackText: feedbackText}
	if err := requireText(req.FeedbackText, "employee feedback text"); err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildFeedbackPrompt(req.FeedbackText)
	log.Printf("📝 Feedback analysis prompt length: %d characters", len(prompt))

	response, err := a.client.Send(ctx, prompt, a.apiKey)
	if err != nil {
		log.Printf("❌ Feedback analysis failed: %v", err)
		return nil, fmt.Errorf("failed to generate feedback analysis: %w", err)
	}
	log.Printf("✅ Feedback analysis response received: %d characters", len(response))

	result, err := a.parser.ParseFeedback(response)
	if err != nil {
		log.Printf("❌ Failed to parse feedback analysis response: %v", err)
		return nil, fmt.Errorf("failed to parse feedback analysis response: %w", err)
	}

	return result, nil
}

// requireText rejects input that is empty after trimming whitespace.
func requireText(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	return nil
}
