package models

// AnalysisRequest carries the single form field submitted by the browser.
type AnalysisRequest struct {
	Username string `json:"user_id"`
}
