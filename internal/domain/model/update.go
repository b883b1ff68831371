package model

// ItemUpdate is the body of a PUT to the review API for a single item.
// Nil fields are left untouched server-side.
type ItemUpdate struct {
	Status      *ReviewStatus     `json:"status,omitempty"`
	HumanReview *HumanReviewInput `json:"human_review,omitempty"`
}

// HumanReviewInput is the reviewer-supplied portion of an item update.
// It mirrors HumanReview but with every field optional, so a submission
// only overwrites what the reviewer actually filled in.
type HumanReviewInput struct {
	ReviewerName          *string  `json:"reviewer_name,omitempty"`
	CorrectnessScore      *float64 `json:"correctness_score,omitempty"`
	SafetyPolicyScore     *float64 `json:"safety_policy_score,omitempty"`
	Comments              *string  `json:"comments,omitempty"`
	DisagreesWithDeepEval *bool    `json:"disagrees_with_deepeval,omitempty"`
	ReviewerConfidence    *float64 `json:"reviewer_confidence,omitempty"`
}

// BulkItemUpdate is one entry of a bulk-update request.
type BulkItemUpdate struct {
	ReviewID    int               `json:"review_id"`
	Status      *ReviewStatus     `json:"status,omitempty"`
	HumanReview *HumanReviewInput `json:"human_review,omitempty"`
}

// BulkUpdateResult reports the outcome of a bulk update.
type BulkUpdateResult struct {
	UpdatedCount int      `json:"updated_count"`
	Errors       []string `json:"errors,omitempty"`
}
