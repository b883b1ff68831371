package web

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/ericfisherdev/evaldash/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/evaldash/internal/domain/model"
	"github.com/ericfisherdev/evaldash/internal/query"
)

const questionPreviewRunes = 140

// toListPage flattens one fetched page plus the controller state into the
// list view model. Threshold badge classes come from the committed
// parameters, so changing the thresholds re-colors the table without any
// backend involvement.
func toListPage(committed, draft query.Params, page *model.ItemPage, summary *model.Summary, fetchErr error, csrf string) viewmodel.ListPage {
	committedQuery := query.Encode(committed).Encode()

	vm := viewmodel.ListPage{
		Filters:        toFilterPanel(draft),
		CommittedQuery: committedQuery,
		CSRFToken:      csrf,
	}
	if fetchErr != nil {
		vm.FetchError = fetchErr.Error()
	}
	if summary != nil {
		vm.Summary = &viewmodel.SummaryBar{
			Total:           summary.TotalItems,
			Pending:         summary.Pending,
			Reviewed:        summary.Reviewed,
			Skipped:         summary.Skipped,
			ProgressPercent: strconv.FormatFloat(summary.ProgressPercent, 'f', 1, 64),
		}
	}
	if page == nil {
		return vm
	}

	vm.Items = make([]viewmodel.ItemRow, 0, len(page.Items))
	for i := range page.Items {
		vm.Items = append(vm.Items, toItemRow(&page.Items[i], committed, committedQuery))
	}
	vm.Pagination = toPagination(committed, page)
	return vm
}

func toItemRow(item *model.ReviewItem, committed query.Params, committedQuery string) viewmodel.ItemRow {
	row := viewmodel.ItemRow{
		ReviewID:        item.ReviewID,
		Question:        truncate(item.Question, questionPreviewRunes),
		Model:           item.Model,
		Provider:        item.Provider,
		Status:          string(item.Status),
		StatusClass:     "status-" + string(item.Status),
		ReviewTypeLabel: reviewTypeLabel(item),
		OverallScore:    formatScore(item.Scores.OverallScore),
		ScoreClass:      scoreClass(item.Scores.OverallScore, committed),
		DetailPath:      detailPath(item.ReviewID, committedQuery),
	}
	if item.SafetyPolicy != nil {
		if item.IsViolation() {
			row.SafetyBadge = "violation"
		} else {
			row.SafetyBadge = "safe"
		}
	}
	return row
}

func toFilterPanel(draft query.Params) viewmodel.FilterPanel {
	return viewmodel.FilterPanel{
		Status:             string(draft.Status),
		ReviewType:         string(draft.ReviewType),
		SafetyFilter:       string(draft.SafetyFilter),
		PerPage:            draft.PerPage,
		PerPageOptions:     query.PerPageOptions,
		SampleGood:         formatOptInt(draft.SampleGood),
		SampleBad:          formatOptInt(draft.SampleBad),
		Seed:               formatOptInt(draft.Seed),
		SampleOnly:         draft.SampleOnly,
		HighScoreThreshold: strconv.FormatFloat(draft.HighScoreThreshold, 'f', -1, 64),
		LowScoreThreshold:  strconv.FormatFloat(draft.LowScoreThreshold, 'f', -1, 64),
	}
}

func toPagination(committed query.Params, page *model.ItemPage) viewmodel.Pagination {
	p := viewmodel.Pagination{
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Total:      page.Total,
		HasPrev:    page.Page > 1,
		HasNext:    page.Page < page.TotalPages,
	}
	if p.HasPrev {
		prev := committed
		prev.Page = page.Page - 1
		p.PrevPath = listPath(prev)
	}
	if p.HasNext {
		next := committed
		next.Page = page.Page + 1
		p.NextPath = listPath(next)
	}
	return p
}

// toDetailPage flattens one item into the detail view model. Markdown
// fields are rendered and sanitized here so the template writes them raw.
func toDetailPage(item *model.ReviewItem, committed query.Params, reviewerName, returnQuery, csrf string) viewmodel.DetailPage {
	vm := viewmodel.DetailPage{
		ReviewID:            item.ReviewID,
		QuestionID:          item.QuestionID,
		QuestionHTML:        RenderMarkdown(item.Question),
		ReferenceAnswerHTML: RenderMarkdown(item.ReferenceAnswer),
		LLMAnswerHTML:       RenderMarkdown(item.LLMAnswer),
		Subject:             item.Subject,
		QuestionType:        item.QuestionType,
		Model:               item.Model,
		Provider:            item.Provider,
		Status:              string(item.Status),
		StatusClass:         "status-" + string(item.Status),
		ReviewTypeLabel:     reviewTypeLabel(item),
		AmbiguityReasons:    item.AmbiguityReasons,
		OverallScore:        formatScore(item.Scores.OverallScore),
		ScoreClass:          scoreClass(item.Scores.OverallScore, committed),
		Metrics:             toMetricRows(item.Scores),
		Form:                viewmodel.ReviewForm{ReviewerName: reviewerName},
		BackPath:            backPath(returnQuery),
		ReturnQuery:         returnQuery,
		CSRFToken:           csrf,
	}

	if sp := item.SafetyPolicy; sp != nil {
		verdict := "safe"
		if item.IsViolation() {
			verdict = "violation"
		}
		vm.Safety = &viewmodel.SafetyRow{
			Verdict:       verdict,
			ViolationType: sp.ViolationType,
			Score:         formatScore(sp.Score),
			ReasonHTML:    RenderMarkdown(sp.Reason),
		}
	}

	if hr := item.HumanReview; hr != nil && hr.ReviewerName != "" {
		vm.Human = &viewmodel.HumanRow{
			ReviewerName: hr.ReviewerName,
			ReviewedAt:   hr.ReviewedAt,
			Correctness:  formatScore(hr.CorrectnessScore),
			SafetyScore:  formatScore(hr.SafetyPolicyScore),
			Confidence:   formatScore(hr.ReviewerConfidence),
			Comments:     hr.Comments,
			Disagrees:    hr.DisagreesWithDeepEval,
		}
	}

	return vm
}

func toMetricRows(scores model.ScoreBreakdown) []viewmodel.MetricRow {
	rows := []viewmodel.MetricRow{
		toMetricRow("Relevancy", scores.Relevancy),
		toMetricRow("Faithfulness", scores.Faithfulness),
		toMetricRow("Hallucination", scores.Hallucination),
		toMetricRow("Bias", scores.Bias),
	}
	if scores.Correctness != nil {
		rows = append(rows, toMetricRow("Correctness", *scores.Correctness))
	}
	return rows
}

func toMetricRow(name string, m model.MetricScore) viewmodel.MetricRow {
	row := viewmodel.MetricRow{
		Name:       name,
		Score:      "n/a",
		ReasonHTML: RenderMarkdown(m.Reason),
	}
	if m.HasScore() {
		row.Score = formatScore(m.Score)
	}
	if m.IsSuccessful != nil {
		if *m.IsSuccessful {
			row.Verdict = "pass"
		} else {
			row.Verdict = "fail"
		}
	}
	return row
}

// reviewTypeLabel prefers the backend-provided label and falls back to the
// raw review type value.
func reviewTypeLabel(item *model.ReviewItem) string {
	if item.ReviewTypeLabel != "" {
		return item.ReviewTypeLabel
	}
	return string(item.ReviewType)
}

// scoreClass buckets a score against the committed thresholds. Items without
// a score get no class.
func scoreClass(score *float64, committed query.Params) string {
	if score == nil {
		return ""
	}
	switch {
	case *score >= committed.HighScoreThreshold:
		return "score-good"
	case *score < committed.LowScoreThreshold:
		return "score-bad"
	default:
		return "score-mid"
	}
}

func formatScore(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatOptInt(v query.OptInt) string {
	if !v.Set {
		return ""
	}
	return strconv.Itoa(v.Val)
}

// listPath builds the list URL for the given parameters.
func listPath(p query.Params) string {
	if enc := query.Encode(p).Encode(); enc != "" {
		return "/items?" + enc
	}
	return "/items"
}

// detailPath builds the detail URL for an item, carrying the committed list
// query so the detail page can link and redirect back to the same view.
func detailPath(reviewID int, committedQuery string) string {
	path := fmt.Sprintf("/items/%d", reviewID)
	if committedQuery != "" {
		path += "?return=" + url.QueryEscape(committedQuery)
	}
	return path
}

// backPath builds the list URL a detail page returns to.
func backPath(returnQuery string) string {
	if returnQuery != "" {
		return "/items?" + returnQuery
	}
	return "/items"
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
