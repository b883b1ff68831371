// Package viewmodel holds the flattened, display-ready structures the HTML
// templates render. Handlers build these from domain models so the templates
// stay free of formatting and threshold logic.
package viewmodel

// ListPage is everything the item list page renders.
type ListPage struct {
	Items          []ItemRow
	Filters        FilterPanel
	Pagination     Pagination
	Summary        *SummaryBar
	FetchError     string
	CommittedQuery string
	CSRFToken      string
}

// ItemRow is a single row in the item table.
type ItemRow struct {
	ReviewID        int
	Question        string
	Model           string
	Provider        string
	Status          string
	StatusClass     string
	ReviewTypeLabel string
	OverallScore    string
	ScoreClass      string
	SafetyBadge     string
	DetailPath      string
}

// FilterPanel carries the draft parameter values the filter form displays.
type FilterPanel struct {
	Status             string
	ReviewType         string
	SafetyFilter       string
	PerPage            int
	PerPageOptions     []int
	SampleGood         string
	SampleBad          string
	Seed               string
	SampleOnly         bool
	HighScoreThreshold string
	LowScoreThreshold  string
}

// Pagination carries the pager state for the list page.
type Pagination struct {
	Page       int
	TotalPages int
	Total      int
	HasPrev    bool
	HasNext    bool
	PrevPath   string
	NextPath   string
}

// SummaryBar shows overall review progress above the item table.
type SummaryBar struct {
	Total           int
	Pending         int
	Reviewed        int
	Skipped         int
	ProgressPercent string
}

// DetailPage is everything the item detail page renders.
type DetailPage struct {
	ReviewID            int
	QuestionID          string
	QuestionHTML        string
	ReferenceAnswerHTML string
	LLMAnswerHTML       string
	Subject             string
	QuestionType        string
	Model               string
	Provider            string
	Status              string
	StatusClass         string
	ReviewTypeLabel     string
	AmbiguityReasons    []string
	OverallScore        string
	ScoreClass          string
	Metrics             []MetricRow
	Safety              *SafetyRow
	Human               *HumanRow
	Form                ReviewForm
	BackPath            string
	ReturnQuery         string
	CSRFToken           string
}

// MetricRow is a single automated metric on the detail page.
type MetricRow struct {
	Name       string
	Score      string
	Verdict    string
	ReasonHTML string
}

// SafetyRow shows the safety policy evaluation when present.
type SafetyRow struct {
	Verdict       string
	ViolationType string
	Score         string
	ReasonHTML    string
}

// HumanRow shows an already-recorded human review.
type HumanRow struct {
	ReviewerName string
	ReviewedAt   string
	Correctness  string
	SafetyScore  string
	Confidence   string
	Comments     string
	Disagrees    bool
}

// ReviewForm carries the review submission form state, including the
// validation error shown after a rejected submit.
type ReviewForm struct {
	ReviewerName string
	FormError    string
}

// ErrorPage is the generic full-page error view.
type ErrorPage struct {
	Title   string
	Message string
}
