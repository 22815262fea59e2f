package models

// AnalysisResult is a model response decoded as a generic JSON object.
type AnalysisResult map[string]any

type ResumeRequest struct {
	ResumeText     string
	JobDescription string
}

type FeedbackRequest struct {
	FeedbackText string
}

type ResumeAnalysis struct {
	ExtractedSkills   []string `json:"extracted_skills" validate:"required"`
	MatchingSkills    []string `json:"matching_skills" validate:"required"`
	MissingSkills     []string `json:"missing_skills" validate:"required"`
	ExperienceSummary string   `json:"experience_summary" validate:"required"`
	EducationSummary  string   `json:"education_summary" validate:"required"`
	MatchScore        *float64 `json:"match_score" validate:"required"`
	Strengths         []string `json:"strengths" validate:"required"`
	Weaknesses        []string `json:"weaknesses" validate:"required"`
	OverallAssessment string   `json:"overall_assessment" validate:"required"`
}

type AttritionRisk struct {
	Level     string `json:"level" validate:"required,oneof=low medium high"`
	Reasoning string `json:"reasoning" validate:"required"`
}

type FeedbackAnalysis struct {
	SentimentScore            *float64       `json:"sentiment_score" validate:"required"`
	PrimarySentiment          string         `json:"primary_sentiment" validate:"required"`
	KeyThemes                 []string       `json:"key_themes" validate:"required"`
	PositiveAspects           []string       `json:"positive_aspects" validate:"required"`
	Concerns                  []string       `json:"concerns" validate:"required"`
	AttritionRisk             *AttritionRisk `json:"attrition_risk" validate:"required"`
	EngagementRecommendations []string       `json:"engagement_recommendations" validate:"required"`
	Summary                   string         `json:"summary" validate:"required"`
}
