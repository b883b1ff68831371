package model

// ReviewStatus represents the review state of an item.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusReviewed ReviewStatus = "reviewed"
	StatusSkipped  ReviewStatus = "skipped"
)

// ReviewType categorizes why an item was selected for human review.
type ReviewType string

const (
	ReviewTypeAmbiguous  ReviewType = "ambiguous"   // Score in the gray zone or conflicting metrics.
	ReviewTypeGoodSample ReviewType = "good_sample" // High-score sample drawn for validation.
	ReviewTypeBadSample  ReviewType = "bad_sample"  // Low-score sample drawn for validation.
)

// SafetyFilter selects items by their safety-policy verdict.
type SafetyFilter string

const (
	SafetySafe   SafetyFilter = "safe"
	SafetyUnsafe SafetyFilter = "unsafe"
)
