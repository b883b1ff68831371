package model

// ReviewItem is a single evaluation result queued for human review, as
// served by the review API. The dashboard passes the shape through to
// filters and forms; score semantics stay with the backend.
type ReviewItem struct {
	ReviewID        int          `json:"review_id"`
	QuestionID      string       `json:"question_id,omitempty"`
	Status          ReviewStatus `json:"status"`
	ReviewType      ReviewType   `json:"review_type"`
	ReviewTypeLabel string       `json:"review_type_label,omitempty"`

	Question        string `json:"question"`
	ReferenceAnswer string `json:"reference_answer,omitempty"`
	LLMAnswer       string `json:"llm_answer"`
	Subject         string `json:"subject,omitempty"`
	QuestionType    string `json:"question_type,omitempty"`
	Model           string `json:"model,omitempty"`
	Provider        string `json:"provider,omitempty"`

	AmbiguityReasons []string       `json:"ambiguity_reasons,omitempty"`
	Scores           ScoreBreakdown `json:"deepeval_scores"`
	HumanReview      *HumanReview   `json:"human_review,omitempty"`
	SafetyPolicy     *SafetyPolicy  `json:"safety_policy,omitempty"`
}

// IsViolation reports whether the item carries a safety-policy violation
// verdict. Items without safety data count as safe.
func (i *ReviewItem) IsViolation() bool {
	return i.SafetyPolicy != nil && i.SafetyPolicy.IsViolation
}

// ItemPage is one page of review items together with pagination metadata.
type ItemPage struct {
	Items      []ReviewItem `json:"items"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	TotalPages int          `json:"total_pages"`
}
