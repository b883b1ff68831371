package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/evaldash/internal/adapter/driving/web/viewmodel"
)

// ItemDetail renders one item: the question and answers, the automated
// metric breakdown, any existing human review, and the review form.
func ItemDetail(vm viewmodel.DetailPage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<a class="back-link" href="` + esc(vm.BackPath) + `">&larr; Back to items</a>`)

		writeDetailHeader(h, vm)
		writeContentSections(h, vm)
		writeMetrics(h, vm)
		if vm.Human != nil {
			writeHumanReview(h, vm.Human)
		}
		writeReviewForm(h, vm)

		return h.err
	})
}

func writeDetailHeader(h *htmlWriter, vm viewmodel.DetailPage) {
	h.raw(`<header class="detail-header">`)
	h.f(`<h1>Item #%d</h1>`, vm.ReviewID)
	h.raw(`<span class="badge ` + esc(vm.StatusClass) + `">` + esc(vm.Status) + `</span>`)
	h.raw(`<span class="badge">` + esc(vm.ReviewTypeLabel) + `</span>`)
	h.raw(`<span class="score ` + esc(vm.ScoreClass) + `">Overall ` + esc(vm.OverallScore) + `</span>`)
	h.raw(`</header>`)

	h.raw(`<dl class="meta-grid">`)
	writeMetaField(h, "Question ID", vm.QuestionID)
	writeMetaField(h, "Subject", vm.Subject)
	writeMetaField(h, "Question type", vm.QuestionType)
	writeMetaField(h, "Model", vm.Model)
	writeMetaField(h, "Provider", vm.Provider)
	h.raw(`</dl>`)

	if len(vm.AmbiguityReasons) > 0 {
		h.raw(`<section class="ambiguity"><h2>Why this item needs review</h2><ul>`)
		for _, reason := range vm.AmbiguityReasons {
			h.raw(`<li>`)
			h.text(reason)
			h.raw(`</li>`)
		}
		h.raw(`</ul></section>`)
	}
}

func writeMetaField(h *htmlWriter, label, value string) {
	if value == "" {
		return
	}
	h.raw(`<dt>` + esc(label) + `</dt><dd>`)
	h.text(value)
	h.raw(`</dd>`)
}

func writeContentSections(h *htmlWriter, vm viewmodel.DetailPage) {
	h.raw(`<section class="content-block"><h2>Question</h2><div class="markdown">` + vm.QuestionHTML + `</div></section>`)
	h.raw(`<section class="content-block"><h2>LLM answer</h2><div class="markdown">` + vm.LLMAnswerHTML + `</div></section>`)
	if vm.ReferenceAnswerHTML != "" {
		h.raw(`<section class="content-block"><h2>Reference answer</h2><div class="markdown">` + vm.ReferenceAnswerHTML + `</div></section>`)
	}
}

func writeMetrics(h *htmlWriter, vm viewmodel.DetailPage) {
	h.raw(`<section class="metrics"><h2>Automated scores</h2>`)
	h.raw(`<table class="metric-table"><thead><tr><th>Metric</th><th>Score</th><th>Verdict</th><th>Reason</th></tr></thead><tbody>`)
	for _, m := range vm.Metrics {
		h.raw(`<tr><td>` + esc(m.Name) + `</td>`)
		h.raw(`<td>` + esc(m.Score) + `</td>`)
		h.raw(`<td>`)
		if m.Verdict != "" {
			h.raw(`<span class="badge verdict-` + esc(m.Verdict) + `">` + esc(m.Verdict) + `</span>`)
		}
		h.raw(`</td>`)
		h.raw(`<td class="markdown">` + m.ReasonHTML + `</td></tr>`)
	}
	h.raw(`</tbody></table>`)

	if s := vm.Safety; s != nil {
		h.raw(`<div class="safety-verdict"><h3>Safety policy</h3>`)
		h.raw(`<span class="badge safety-` + esc(s.Verdict) + `">` + esc(s.Verdict) + `</span>`)
		if s.ViolationType != "" {
			h.raw(`<span class="muted">`)
			h.text(s.ViolationType)
			h.raw(`</span>`)
		}
		h.raw(`<span class="score">` + esc(s.Score) + `</span>`)
		if s.ReasonHTML != "" {
			h.raw(`<div class="markdown">` + s.ReasonHTML + `</div>`)
		}
		h.raw(`</div>`)
	}
	h.raw(`</section>`)
}

func writeHumanReview(h *htmlWriter, hr *viewmodel.HumanRow) {
	h.raw(`<section class="human-review"><h2>Existing human review</h2><dl class="meta-grid">`)
	writeMetaField(h, "Reviewer", hr.ReviewerName)
	writeMetaField(h, "Reviewed at", hr.ReviewedAt)
	writeMetaField(h, "Correctness", hr.Correctness)
	writeMetaField(h, "Safety", hr.SafetyScore)
	writeMetaField(h, "Confidence", hr.Confidence)
	h.raw(`</dl>`)
	if hr.Disagrees {
		h.raw(`<p class="badge verdict-fail">Disagrees with automated scores</p>`)
	}
	if hr.Comments != "" {
		h.raw(`<blockquote class="comments">`)
		h.text(hr.Comments)
		h.raw(`</blockquote>`)
	}
	h.raw(`</section>`)
}

func writeReviewForm(h *htmlWriter, vm viewmodel.DetailPage) {
	h.raw(`<section class="review-form"><h2>Submit review</h2>`)

	if vm.Form.FormError != "" {
		h.raw(`<div class="banner banner-error">`)
		h.text(vm.Form.FormError)
		h.raw(`</div>`)
	}

	h.f(`<form method="post" action="/items/%d/review">`, vm.ReviewID)
	hiddenField(h, "csrf_token", vm.CSRFToken)
	hiddenField(h, "return", vm.ReturnQuery)

	h.raw(`<label>Reviewer name <input type="text" name="reviewer_name" required value="` + esc(vm.Form.ReviewerName) + `"></label>`)
	h.raw(`<label>Correctness (0-1) <input type="number" step="0.1" min="0" max="1" name="correctness_score"></label>`)
	h.raw(`<label>Safety (0-1) <input type="number" step="0.1" min="0" max="1" name="safety_policy_score"></label>`)
	h.raw(`<label>Confidence (0-1) <input type="number" step="0.1" min="0" max="1" name="reviewer_confidence"></label>`)
	h.raw(`<label class="checkbox"><input type="checkbox" name="disagrees" value="true"> Disagree with automated scores</label>`)
	h.raw(`<label>Comments <textarea name="comments" rows="4"></textarea></label>`)
	h.raw(`<button type="submit" class="btn btn-primary">Submit review</button>`)
	h.raw(`</form>`)

	h.f(`<form method="post" action="/items/%d/skip" class="skip-form">`, vm.ReviewID)
	hiddenField(h, "csrf_token", vm.CSRFToken)
	hiddenField(h, "return", vm.ReturnQuery)
	h.raw(`<button type="submit" class="btn">Skip item</button></form>`)

	h.raw(`</section>`)
}
