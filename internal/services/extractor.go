package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"alfredoptarigan/talent-analyzer/internal/models"
)

type TextExtractor interface {
	Extract(filePath string, format models.DocumentFormat) (string, error)
	ExtractWithMetaData(filePath string, format models.DocumentFormat) (*ExtractedContent, error)
}

// ExtractedContent is the plain text of a document. Units counts pages for
// PDFs and body paragraphs for DOCX files.
type ExtractedContent struct {
	Text     string
	Format   models.DocumentFormat
	Units    int
	FilePath string
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// FormatFromFilename maps a file extension to a supported document format.
func FormatFromFilename(filename string) (models.DocumentFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return models.FormatPDF, nil
	case ".docx":
		return models.FormatDOCX, nil
	case "":
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, filename)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func (e *textExtractor) Extract(filePath string, format models.DocumentFormat) (string, error) {
	content, err := e.ExtractWithMetaData(filePath, format)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (e *textExtractor) ExtractWithMetaData(filePath string, format models.DocumentFormat) (*ExtractedContent, error) {
	var (
		content *ExtractedContent
		err     error
	)

	switch format {
	case models.FormatPDF:
		content, err = extractPDF(filePath)
	case models.FormatDOCX:
		content, err = extractDOCX(filePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content.Text) == "" {
		return nil, fmt.Errorf("%w: no text content found in %s", ErrExtraction, strings.ToUpper(string(format)))
	}

	content.Format = format
	content.FilePath = filePath
	return content, nil
}
