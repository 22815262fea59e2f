package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/talent-analyzer/internal/models"
	"alfredoptarigan/talent-analyzer/internal/services"
)

// requestError is a validation failure whose message is safe to show as-is.
type requestError struct {
	status  int
	message string
}

func (e *requestError) Error() string { return e.message }

func badRequest(status int, message string) error {
	return &requestError{status: status, message: message}
}

// errorResponse maps an error to a status code and a short message that
// carries no internal detail.
func errorResponse(err error) (int, string) {
	var reqErr *requestError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &reqErr):
		return reqErr.status, reqErr.message
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.Is(err, services.ErrUnsupportedFormat):
		return fiber.StatusUnsupportedMediaType, "Unsupported file format. Please upload a PDF or DOCX file."
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest, "Invalid input. Please check the submitted form."
	case errors.Is(err, services.ErrExtraction):
		return fiber.StatusUnprocessableEntity, "Could not extract text from the uploaded document. Please upload a valid, text-based PDF or DOCX file."
	case errors.Is(err, services.ErrAuth):
		return fiber.StatusServiceUnavailable, "The analysis service is not configured with valid credentials."
	case errors.Is(err, services.ErrParse):
		return fiber.StatusBadGateway, "The analysis service returned a response that could not be understood. Please try again."
	case errors.Is(err, services.ErrAPI):
		return fiber.StatusBadGateway, "The analysis service is currently unavailable. Please try again later."
	default:
		return fiber.StatusInternalServerError, "An unexpected error occurred while processing the request."
	}
}

func wantsJSON(c *fiber.Ctx) bool {
	return c.XHR() || strings.HasPrefix(c.Path(), "/api/")
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes, oversized bodies and recovered panics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, message := errorResponse(err)
	if code >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	}

	if wantsJSON(c) {
		return c.Status(code).JSON(models.AnalysisResponse{
			Success: false,
			Error:   message,
		})
	}

	page, title := "500", "Error"
	if code == fiber.StatusNotFound {
		page, title = "404", "Not Found"
	}

	if renderErr := c.Status(code).Render(page, models.PageData{Title: title, Error: message}, LayoutMain); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
