package models

type AnalysisResponse struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

// PageData is what the HTML templates render.
type PageData struct {
	Title          string
	JobDescription string
	FeedbackText   string
	Resume         *ResumeAnalysis
	Feedback       *FeedbackAnalysis
	Error          string
	Success        string
}
