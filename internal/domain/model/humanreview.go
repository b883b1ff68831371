package model

// HumanReview holds the reviewer's judgment as stored on an item. All score
// fields use the 0.0-1.0 scale of the automated metrics.
type HumanReview struct {
	ReviewerName string `json:"reviewer_name,omitempty"`
	ReviewedAt   string `json:"reviewed_at,omitempty"`

	CorrectnessScore  *float64 `json:"correctness_score,omitempty"`
	SafetyPolicyScore *float64 `json:"safety_policy_score,omitempty"`

	Comments              string   `json:"comments,omitempty"`
	DisagreesWithDeepEval bool     `json:"disagrees_with_deepeval,omitempty"`
	ReviewerConfidence    *float64 `json:"reviewer_confidence,omitempty"`

	// Legacy per-metric overrides kept for older review files.
	OverallScore       *float64 `json:"overall_score,omitempty"`
	RelevancyScore     *float64 `json:"relevancy_score,omitempty"`
	FaithfulnessScore  *float64 `json:"faithfulness_score,omitempty"`
	HallucinationScore *float64 `json:"hallucination_score,omitempty"`
	BiasScore          *float64 `json:"bias_score,omitempty"`
}
