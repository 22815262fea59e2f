package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildResumePrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildResumePrompt("Python, SQL, 3 years experience", "Data Analyst with SQL")

	assert.Contains(t, prompt, "JOB DESCRIPTION:\nData Analyst with SQL\n")
	assert.Contains(t, prompt, "RESUME:\nPython, SQL, 3 years experience\n")
	for _, field := range []string{
		"extracted_skills", "matching_skills", "missing_skills",
		"experience_summary", "education_summary", "match_score",
		"strengths", "weaknesses", "overall_assessment",
	} {
		assert.Contains(t, prompt, field)
	}
	assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "Respond with the JSON object only."))
}

func TestBuildResumePromptIsDeterministic(t *testing.T) {
	pb := NewPromptBuilder()

	first := pb.BuildResumePrompt("resume", "job")
	second := NewPromptBuilder().BuildResumePrompt("resume", "job")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, pb.BuildResumePrompt("other resume", "job"))
}

func TestBuildPromptsCopyInputVerbatim(t *testing.T) {
	pb := NewPromptBuilder()
	tricky := "Skills: {{.JobDescription}} {{ printf \"%s\" \"x\" }} <b>&amp;</b> {\"a\": 1}"

	resume := pb.BuildResumePrompt(tricky, "Go developer")
	assert.Contains(t, resume, tricky)
	assert.Equal(t, 1, strings.Count(resume, "Go developer"))

	feedback := pb.BuildFeedbackPrompt(tricky)
	assert.Contains(t, feedback, "EMPLOYEE FEEDBACK:\n"+tricky+"\n")
}

func TestBuildFeedbackPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildFeedbackPrompt("I love my team but I'm overworked")

	assert.Contains(t, prompt, "I love my team but I'm overworked")
	for _, field := range []string{
		"sentiment_score", "primary_sentiment", "key_themes",
		"positive_aspects", "concerns", "attrition_risk", "level",
		"reasoning", "engagement_recommendations", "summary",
	} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, `"low", "medium" or "high"`)
	assert.Equal(t, prompt, pb.BuildFeedbackPrompt("I love my team but I'm overworked"))
}
