package services

import (
	"strings"
	"text/template"
)

// PromptBuilder renders the fixed instruction templates. Inputs are passed as
// template data, so braces or template actions inside a resume or feedback
// text are copied through literally and never evaluated.
type PromptBuilder struct {
	resume   *template.Template
	feedback *template.Template
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		resume:   template.Must(template.New("resume").Parse(resumePromptTemplate)),
		feedback: template.Must(template.New("feedback").Parse(feedbackPromptTemplate)),
	}
}

// BuildResumePrompt creates the prompt for matching a resume against a job description
func (pb *PromptBuilder) BuildResumePrompt(resumeText, jobDescription string) string {
	return render(pb.resume, struct {
		ResumeText     string
		JobDescription string
	}{resumeText, jobDescription})
}

// BuildFeedbackPrompt creates the prompt for employee feedback sentiment analysis
func (pb *PromptBuilder) BuildFeedbackPrompt(feedbackText string) string {
	return render(pb.feedback, struct {
		FeedbackText string
	}{feedbackText})
}

func render(tmpl *template.Template, data any) string {
	var sb strings.Builder
	// Both templates only reference string fields of the data they are
	// given, so execution cannot fail.
	if err := tmpl.Execute(&sb, data); err != nil {
		panic(err)
	}
	return sb.String()
}

const resumePromptTemplate = `You are an expert technical recruiter with more than fifteen years of experience hiring software engineers. Compare the resume below with the job description and assess how well the candidate fits the role.

JOB DESCRIPTION:
{{.JobDescription}}

RESUME:
{{.ResumeText}}

Use the following examples as a guide for the shape and depth of your answer.

Example 1 - strong backend experience, no cloud exposure:
` + "```json" + `
{
  "extracted_skills": ["Java", "Spring Boot", "PostgreSQL", "Git", "Scrum"],
  "matching_skills": ["Java", "PostgreSQL", "Git"],
  "missing_skills": ["AWS", "Docker", "Kubernetes"],
  "experience_summary": "Five years building backend services for a payments company, mostly in a monolithic Java codebase",
  "education_summary": "BSc in Computer Science, 2018",
  "match_score": 62,
  "strengths": ["Solid Java fundamentals", "Relational database design", "Disciplined engineering practices"],
  "weaknesses": ["No public cloud experience", "No container or orchestration work", "Little exposure to distributed systems"],
  "overall_assessment": "Dependable backend engineer whose core language matches the role. The lack of cloud-native experience is the main gap and would need ramp-up time."
}
` + "```" + `

Example 2 - modern cloud stack, fewer years than requested:
` + "```json" + `
{
  "extracted_skills": ["Python", "AWS Lambda", "DynamoDB", "Docker", "Terraform", "GitHub Actions", "React"],
  "matching_skills": ["Python", "AWS", "Docker", "CI/CD"],
  "missing_skills": ["Go", "5+ years of professional experience"],
  "experience_summary": "Two years developing serverless applications on AWS at a startup",
  "education_summary": "MSc in Computer Engineering, 2022",
  "match_score": 74,
  "strengths": ["Hands-on cloud-native delivery", "Infrastructure as code", "Full-stack range"],
  "weaknesses": ["Less experience than the role asks for", "Has not used the team's primary language"],
  "overall_assessment": "Promising engineer with a strong modern toolset. The experience gap is real but the technical foundation makes the candidate a reasonable investment."
}
` + "```" + `

Return a JSON object with exactly these fields:
1. extracted_skills (array of strings): every technical skill found in the resume, including languages, frameworks, tools and platforms
2. matching_skills (array of strings): resume skills that directly satisfy requirements in the job description
3. missing_skills (array of strings): important requirements from the job description that the resume does not show
4. experience_summary (string): short summary of relevant experience, including years, roles and achievements
5. education_summary (string): short summary of degrees, institutions and certifications
6. match_score (number): 0 to 100, how well the resume fits the job description, weighting critical requirements above nice-to-haves
7. strengths (array of strings): the candidate's main strengths for this role
8. weaknesses (array of strings): gaps or unmet requirements for this role
9. overall_assessment (string): two or three sentences on overall fit

Guidelines:
1. Extract both explicitly stated and clearly implied skills
2. Consider soft skills as well as technical ones
3. Weigh depth and duration of experience with each technology
4. Note transferable skills that offset missing requirements
5. Take career progression into account
6. Judge the content of the resume, not the prestige of employers or schools
7. Refer to the candidate by name when the resume states it

Respond with the JSON object only.
`

const feedbackPromptTemplate = `You are an experienced HR analyst specialising in employee engagement and retention. Read the employee feedback below carefully, looking past surface wording for underlying sentiment and signals of disengagement.

EMPLOYEE FEEDBACK:
{{.FeedbackText}}

Use the following examples as a guide for the shape and depth of your answer.

Example 1 - mixed feedback, workload concerns:
` + "```json" + `
{
  "sentiment_score": -0.2,
  "primary_sentiment": "mixed",
  "key_themes": ["Workload", "Team collaboration", "Career development"],
  "positive_aspects": ["Supportive teammates", "Learning opportunities"],
  "concerns": ["Regular overtime", "Understaffing", "Unclear promotion criteria"],
  "attrition_risk": {
    "level": "medium",
    "reasoning": "The employee values the team but describes sustained overload that is likely to push them out if it continues"
  },
  "engagement_recommendations": [
    "Review workload distribution across the team",
    "Set explicit expectations for after-hours work",
    "Publish transparent promotion criteria"
  ],
  "summary": "Appreciates colleagues and growth opportunities but is strained by workload. Addressing staffing and boundaries would noticeably improve retention."
}
` + "```" + `

Example 2 - positive feedback with minor concerns:
` + "```json" + `
{
  "sentiment_score": 0.7,
  "primary_sentiment": "positive",
  "key_themes": ["Leadership", "Recognition", "Culture"],
  "positive_aspects": ["Supportive manager", "Contributions are recognised", "Collaborative atmosphere"],
  "concerns": ["Limited remote work flexibility"],
  "attrition_risk": {
    "level": "low",
    "reasoning": "Strong alignment with leadership and culture; the only concern is operational and minor"
  },
  "engagement_recommendations": [
    "Consider wider remote work options",
    "Keep the current recognition practices"
  ],
  "summary": "Highly engaged employee who is satisfied with leadership and culture. More flexibility would strengthen an already positive relationship."
}
` + "```" + `

Example 3 - negative feedback, likely to leave:
` + "```json" + `
{
  "sentiment_score": -0.8,
  "primary_sentiment": "negative",
  "key_themes": ["Compensation", "Management style", "Career stagnation"],
  "positive_aspects": ["Some helpful colleagues"],
  "concerns": ["Feels undervalued", "Pay below market", "Micromanagement", "No growth path"],
  "attrition_risk": {
    "level": "high",
    "reasoning": "Several serious concerns affect daily work and the language suggests the employee is already looking elsewhere"
  },
  "engagement_recommendations": [
    "Run an urgent compensation review",
    "Provide coaching for the direct manager",
    "Agree a concrete growth plan with milestones"
  ],
  "summary": "Disengaged employee who is probably job hunting. Pay, respect and management style all need immediate attention for any chance of retention."
}
` + "```" + `

Return a JSON object with exactly these fields:
1. sentiment_score (number): overall sentiment from -1.0 (very negative) to 1.0 (very positive)
2. primary_sentiment (string): "positive", "negative", "neutral" or "mixed"
3. key_themes (array of strings): main topics raised in the feedback
4. positive_aspects (array of strings): positive points mentioned
5. concerns (array of strings): issues or complaints mentioned
6. attrition_risk (object):
   - level (string): "low", "medium" or "high"
   - reasoning (string): short explanation of the risk level
7. engagement_recommendations (array of strings): specific, actionable steps to improve engagement
8. summary (string): short summary of the analysis

Guidelines:
1. Look for language that signals an intention to leave
2. Treat repeated or intense concerns as more important
3. Balance positive and negative points when scoring sentiment
4. Make recommendations specific rather than generic
5. Note conditional statements such as "if this does not change" as retention levers
6. Note comparisons with competitors or industry norms

Respond with the JSON object only.
`
