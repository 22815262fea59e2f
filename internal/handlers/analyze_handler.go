package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/talent-analyzer/internal/models"
	"alfredoptarigan/talent-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer       services.AnalyzerService
	storageService services.StorageService
	maxFileSize    int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	storageService services.StorageService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleResume handles POST /analyze-resume
func (h *AnalyzeHandler) HandleResume(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	page := models.PageData{Title: "Resume Screening", JobDescription: jobDescription}

	if strings.TrimSpace(jobDescription) == "" {
		return h.fail(c, "resume_screening", page, badRequest(fiber.StatusBadRequest, "Please provide a job description"))
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return h.fail(c, "resume_screening", page, badRequest(fiber.StatusBadRequest, "No resume file uploaded"))
	}
	if fileHeader.Filename == "" {
		return h.fail(c, "resume_screening", page, badRequest(fiber.StatusBadRequest, "No selected file"))
	}

	// Reject unsupported files before anything touches the disk.
	if _, err := services.FormatFromFilename(fileHeader.Filename); err != nil {
		return h.fail(c, "resume_screening", page, err)
	}

	if fileHeader.Size > h.maxFileSize {
		return h.fail(c, "resume_screening", page, badRequest(
			fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		))
	}

	doc, err := h.storageService.SaveTemp(fileHeader, "resume")
	if err != nil {
		return h.fail(c, "resume_screening", page, err)
	}
	defer func() {
		if err := h.storageService.Delete(doc); err != nil {
			log.Printf("⚠️  Failed to delete temporary upload %s: %v", doc.Filename, err)
		}
	}()

	result, err := h.analyzer.AnalyzeResume(c.UserContext(), doc, jobDescription)
	if err != nil {
		return h.fail(c, "resume_screening", page, err)
	}

	page.Resume = result
	return h.succeed(c, "resume_screening", page, result, "Resume analysis completed successfully")
}

// HandleSentiment handles POST /analyze-sentiment
func (h *AnalyzeHandler) HandleSentiment(c *fiber.Ctx) error {
	feedbackText := c.FormValue("feedback_text")
	page := models.PageData{Title: "Sentiment Analysis", FeedbackText: feedbackText}

	if strings.TrimSpace(feedbackText) == "" {
		return h.fail(c, "sentiment_analysis", page, badRequest(fiber.StatusBadRequest, "Please provide employee feedback text"))
	}

	result, err := h.analyzer.AnalyzeFeedback(c.UserContext(), feedbackText)
	if err != nil {
		return h.fail(c, "sentiment_analysis", page, err)
	}

	page.Feedback = result
	return h.succeed(c, "sentiment_analysis", page, result, "Sentiment analysis completed successfully")
}

func (h *AnalyzeHandler) succeed(c *fiber.Ctx, view string, page models.PageData, result any, message string) error {
	if wantsJSON(c) {
		return c.JSON(models.AnalysisResponse{
			Success: true,
			Result:  result,
		})
	}

	page.Success = message
	return c.Render(view, page, LayoutMain)
}

func (h *AnalyzeHandler) fail(c *fiber.Ctx, view string, page models.PageData, err error) error {
	status, message := errorResponse(err)
	log.Printf("❌ %s %s failed: %v", c.Method(), c.Path(), err)

	if wantsJSON(c) {
		return c.Status(status).JSON(models.AnalysisResponse{
			Success: false,
			Error:   message,
		})
	}

	page.Error = message
	return c.Status(status).Render(view, page, LayoutMain)
}
