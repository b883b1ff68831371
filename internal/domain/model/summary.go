package model

// Summary is the review-progress snapshot served by the review API.
type Summary struct {
	TotalItems      int     `json:"total_items"`
	Pending         int     `json:"pending"`
	Reviewed        int     `json:"reviewed"`
	Skipped         int     `json:"skipped"`
	ProgressPercent float64 `json:"progress_percent"`
}
