package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

func extractPDF(filePath string) (content *ExtractedContent, err error) {
	// The PDF decoder panics on some malformed object graphs.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("%w: malformed PDF: %v", ErrExtraction, r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open PDF: %w", ErrExtraction, err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("⚠️  Skipping PDF page %d: %v", pageIndex, err)
			continue
		}

		// GetPlainText emits a newline for the first text-position move
		// on the page. Pages are concatenated without a separator.
		textBuilder.WriteString(strings.TrimPrefix(text, "\n"))
	}

	return &ExtractedContent{
		Text:  textBuilder.String(),
		Units: totalPage,
	}, nil
}
