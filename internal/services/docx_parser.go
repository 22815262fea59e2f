package services

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

func extractDOCX(filePath string) (*ExtractedContent, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open DOCX: %w", ErrExtraction, err)
	}
	defer r.Close()

	paragraphs, err := bodyParagraphs(r.Editable().GetContent())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read DOCX body: %w", ErrExtraction, err)
	}

	return &ExtractedContent{
		Text:  strings.Join(paragraphs, "\n"),
		Units: len(paragraphs),
	}, nil
}

// bodyParagraphs returns the text of each top-level paragraph of
// word/document.xml in document order. Paragraphs inside tables, text boxes
// and other containers are not part of the body and are left out.
func bodyParagraphs(documentXML string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		stack      []string
		current    strings.Builder
		sawBody    bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)

			switch t.Name.Local {
			case "body":
				sawBody = true
			case "p":
				if parentIs(stack, "body") {
					current.Reset()
				}
			case "tab", "ptab":
				if inBodyRun(stack) {
					current.WriteByte('\t')
				}
			case "noBreakHyphen":
				if inBodyRun(stack) {
					current.WriteByte('-')
				}
			case "br", "cr":
				if inBodyRun(stack) && isLineBreak(t) {
					current.WriteByte('\n')
				}
			}

		case xml.EndElement:
			if t.Name.Local == "p" && parentIs(stack, "body") {
				paragraphs = append(paragraphs, current.String())
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) > 0 && stack[len(stack)-1] == "t" && inBodyRun(stack) {
				current.Write(t)
			}
		}
	}

	if !sawBody {
		return nil, errors.New("document has no body")
	}

	return paragraphs, nil
}

// parentIs reports whether the element on top of stack is a direct child of
// an element named parent.
func parentIs(stack []string, parent string) bool {
	return len(stack) >= 2 && stack[len(stack)-2] == parent
}

// inBodyRun reports whether the element on top of stack belongs to a run of
// a body paragraph, either directly or through a hyperlink.
func inBodyRun(stack []string) bool {
	n := len(stack)
	if n < 4 || stack[n-2] != "r" {
		return false
	}
	if stack[n-3] == "p" && stack[n-4] == "body" {
		return true
	}
	return n >= 5 && stack[n-3] == "hyperlink" && stack[n-4] == "p" && stack[n-5] == "body"
}

// isLineBreak filters out page and column breaks, which carry no text.
func isLineBreak(el xml.StartElement) bool {
	if el.Name.Local != "br" {
		return true
	}
	for _, attr := range el.Attr {
		if attr.Name.Local == "type" {
			return attr.Value == "" || attr.Value == "textWrapping"
		}
	}
	return true
}
