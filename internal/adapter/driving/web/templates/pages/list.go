package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/evaldash/internal/adapter/driving/web/viewmodel"
)

// ItemList renders the item table with its filter panel, summary bar, and
// pager.
func ItemList(vm viewmodel.ListPage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		if vm.FetchError != "" {
			h.raw(`<div class="banner banner-error">Failed to load items: `)
			h.text(vm.FetchError)
			h.raw(`</div>`)
		}

		if vm.Summary != nil {
			writeSummaryBar(h, vm.Summary)
		}

		writeFilterPanel(h, vm)
		writeItemTable(h, vm)
		writePagination(h, vm.Pagination)

		return h.err
	})
}

func writeSummaryBar(h *htmlWriter, s *viewmodel.SummaryBar) {
	h.raw(`<section class="summary-bar">`)
	h.f(`<span class="summary-stat">Total <strong>%d</strong></span>`, s.Total)
	h.f(`<span class="summary-stat">Pending <strong>%d</strong></span>`, s.Pending)
	h.f(`<span class="summary-stat">Reviewed <strong>%d</strong></span>`, s.Reviewed)
	h.f(`<span class="summary-stat">Skipped <strong>%d</strong></span>`, s.Skipped)
	h.raw(`<span class="summary-stat">Progress <strong>` + esc(s.ProgressPercent) + `%</strong></span>`)
	h.raw(`</section>`)
}

func writeFilterPanel(h *htmlWriter, vm viewmodel.ListPage) {
	f := vm.Filters

	h.raw(`<section class="filter-panel"><form method="post" action="/items/filter">`)
	hiddenField(h, "csrf_token", vm.CSRFToken)
	hiddenField(h, "current_query", vm.CommittedQuery)

	h.raw(`<div class="filter-row">`)

	h.raw(`<label>Status <select name="status">`)
	option(h, "", "All", f.Status)
	option(h, "pending", "Pending", f.Status)
	option(h, "reviewed", "Reviewed", f.Status)
	option(h, "skipped", "Skipped", f.Status)
	h.raw(`</select></label>`)

	h.raw(`<label>Review type <select name="review_type">`)
	option(h, "", "All", f.ReviewType)
	option(h, "ambiguous", "Ambiguous", f.ReviewType)
	option(h, "good_sample", "Good sample", f.ReviewType)
	option(h, "bad_sample", "Bad sample", f.ReviewType)
	h.raw(`</select></label>`)

	h.raw(`<label>Safety <select name="safety_filter">`)
	option(h, "", "All", f.SafetyFilter)
	option(h, "safe", "Safe", f.SafetyFilter)
	option(h, "unsafe", "Unsafe", f.SafetyFilter)
	h.raw(`</select></label>`)

	h.raw(`<label>Per page <select name="per_page">`)
	for _, n := range f.PerPageOptions {
		v := strconv.Itoa(n)
		option(h, v, v, strconv.Itoa(f.PerPage))
	}
	h.raw(`</select></label>`)

	h.raw(`</div><div class="filter-row">`)

	h.raw(`<label>Good samples <input type="number" min="0" name="sample_good" value="` + esc(f.SampleGood) + `"></label>`)
	h.raw(`<label>Bad samples <input type="number" min="0" name="sample_bad" value="` + esc(f.SampleBad) + `"></label>`)
	h.raw(`<label>Seed <input type="number" name="random_seed" value="` + esc(f.Seed) + `"></label>`)

	h.raw(`<label class="checkbox"><input type="checkbox" name="sample_only" value="true"`)
	if f.SampleOnly {
		h.raw(` checked`)
	}
	h.raw(`> Samples only</label>`)

	h.raw(`</div><div class="filter-row">`)

	h.raw(`<label>High threshold <input type="number" step="0.01" min="0" max="1" name="high_score_threshold" value="` + esc(f.HighScoreThreshold) + `"></label>`)
	h.raw(`<label>Low threshold <input type="number" step="0.01" min="0" max="1" name="low_score_threshold" value="` + esc(f.LowScoreThreshold) + `"></label>`)

	h.raw(`<button type="submit" class="btn btn-primary">Apply</button>`)
	h.raw(`</div></form>`)

	h.raw(`<form method="post" action="/items/reset" class="filter-reset">`)
	hiddenField(h, "csrf_token", vm.CSRFToken)
	h.raw(`<button type="submit" class="btn">Reset</button></form>`)

	h.raw(`</section>`)
}

func writeItemTable(h *htmlWriter, vm viewmodel.ListPage) {
	if len(vm.Items) == 0 {
		h.raw(`<p class="empty-state">No items match the current filters.</p>`)
		return
	}

	h.raw(`<form method="post" action="/items/skip-page">`)
	hiddenField(h, "csrf_token", vm.CSRFToken)
	hiddenField(h, "return", vm.CommittedQuery)

	h.raw(`<table class="item-table"><thead><tr>` +
		`<th></th><th>ID</th><th>Question</th><th>Model</th><th>Status</th>` +
		`<th>Type</th><th>Score</th><th>Safety</th>` +
		`</tr></thead><tbody>`)

	for _, row := range vm.Items {
		h.raw(`<tr>`)
		h.f(`<td><input type="checkbox" name="review_id" value="%d"></td>`, row.ReviewID)
		h.f(`<td>%d</td>`, row.ReviewID)
		h.raw(`<td><a href="` + esc(row.DetailPath) + `">`)
		h.text(row.Question)
		h.raw(`</a></td>`)
		h.raw(`<td>`)
		h.text(row.Model)
		if row.Provider != "" {
			h.raw(`<span class="muted"> / ` + esc(row.Provider) + `</span>`)
		}
		h.raw(`</td>`)
		h.raw(`<td><span class="badge ` + esc(row.StatusClass) + `">` + esc(row.Status) + `</span></td>`)
		h.raw(`<td>` + esc(row.ReviewTypeLabel) + `</td>`)
		h.raw(`<td><span class="score ` + esc(row.ScoreClass) + `">` + esc(row.OverallScore) + `</span></td>`)
		h.raw(`<td>`)
		if row.SafetyBadge != "" {
			h.raw(`<span class="badge safety-` + esc(row.SafetyBadge) + `">` + esc(row.SafetyBadge) + `</span>`)
		}
		h.raw(`</td></tr>`)
	}

	h.raw(`</tbody></table>`)
	h.raw(`<button type="submit" class="btn">Skip selected</button></form>`)
}

func writePagination(h *htmlWriter, p viewmodel.Pagination) {
	if p.TotalPages <= 1 {
		return
	}

	h.raw(`<nav class="pager">`)
	if p.HasPrev {
		h.raw(`<a class="btn" href="` + esc(p.PrevPath) + `">Previous</a>`)
	}
	h.f(`<span class="pager-state">Page %d of %d (%d items)</span>`, p.Page, p.TotalPages, p.Total)
	if p.HasNext {
		h.raw(`<a class="btn" href="` + esc(p.NextPath) + `">Next</a>`)
	}
	h.raw(`</nav>`)
}
