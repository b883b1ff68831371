package model

// MetricScore is a single automated metric result. Score is a pointer
// because the judge may fail to produce one; reason text is optional.
type MetricScore struct {
	Score        *float64 `json:"score"`
	Reason       string   `json:"reason,omitempty"`
	IsSuccessful *bool    `json:"is_successful"`
}

// HasScore reports whether the metric produced a numeric score.
func (m MetricScore) HasScore() bool {
	return m.Score != nil
}

// ScoreBreakdown is the automated evaluation of one item: an overall score
// plus the per-metric results. Correctness is only present when the
// evaluation ran with a reference answer.
type ScoreBreakdown struct {
	OverallScore  *float64     `json:"overall_score"`
	Relevancy     MetricScore  `json:"relevancy"`
	Faithfulness  MetricScore  `json:"faithfulness"`
	Hallucination MetricScore  `json:"hallucination"`
	Bias          MetricScore  `json:"bias"`
	Correctness   *MetricScore `json:"correctness,omitempty"`
}

// SafetyPolicy is the safety-judge verdict attached to an item when the
// evaluation included a safety pass.
type SafetyPolicy struct {
	Score         *float64 `json:"score"`
	IsViolation   bool     `json:"is_violation"`
	ViolationType string   `json:"violation_type,omitempty"`
	Reason        string   `json:"reason,omitempty"`
	IsSuccessful  bool     `json:"is_successful"`
}
