package models

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// Document is an uploaded file held on disk only until its text is extracted.
type Document struct {
	Path             string
	Filename         string
	OriginalFileName string
	Format           DocumentFormat
	Size             int64
}
