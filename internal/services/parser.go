package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"alfredoptarigan/talent-analyzer/internal/models"
)

type ResultParser struct {
	validate *validator.Validate
}

func NewResultParser() *ResultParser {
	return &ResultParser{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Parse decodes a model response into a generic JSON object. Fields are
// passed through as-is and numbers keep their exact text as json.Number.
func (p *ResultParser) Parse(raw string) (models.AnalysisResult, error) {
	object, err := jsonObject(raw)
	if err != nil {
		return nil, err
	}

	var result models.AnalysisResult
	if err := decodeJSON(object, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// ParseResume decodes and validates a resume analysis.
func (p *ResultParser) ParseResume(raw string) (*models.ResumeAnalysis, error) {
	object, err := jsonObject(raw)
	if err != nil {
		return nil, err
	}

	var result models.ResumeAnalysis
	if err := decodeJSON(object, &result); err != nil {
		return nil, err
	}

	if err := p.check(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// ParseFeedback decodes and validates a feedback sentiment analysis.
func (p *ResultParser) ParseFeedback(raw string) (*models.FeedbackAnalysis, error) {
	object, err := jsonObject(raw)
	if err != nil {
		return nil, err
	}

	var result models.FeedbackAnalysis
	if err := decodeJSON(object, &result); err != nil {
		return nil, err
	}

	if result.AttritionRisk != nil {
		result.AttritionRisk.Level = strings.ToLower(strings.TrimSpace(result.AttritionRisk.Level))
	}

	if err := p.check(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (p *ResultParser) check(v any) error {
	err := p.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: invalid fields: %s", ErrParse, strings.Join(fields, ", "))
}

// CleanJSON strips the markdown fence and language tag LLMs wrap JSON in.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)

	if len(clean) >= 4 && strings.EqualFold(clean[:4], "json") {
		clean = clean[4:]
	}

	return strings.TrimSpace(clean)
}

// jsonObject cleans a model response and returns it as a single JSON
// object value.
func jsonObject(raw string) (json.RawMessage, error) {
	var value json.RawMessage
	if err := decodeJSON([]byte(CleanJSON(raw)), &value); err != nil {
		return nil, err
	}

	if kind := jsonKind(value); kind != "object" {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrParse, kind)
	}

	return value, nil
}

// decodeJSON decodes exactly one JSON value from data into target.
func decodeJSON(data []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after the JSON value", ErrParse)
	}
	return nil
}

func jsonKind(value json.RawMessage) string {
	switch value[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
