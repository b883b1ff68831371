package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ericfisherdev/evaldash/internal/application"
	"github.com/ericfisherdev/evaldash/internal/query"
)

// filterPatch converts a posted filter form into a Patch covering every
// filter field. The form's field names are the query keys, so decoding the
// form values through the codec gives the same tolerant parsing the URL
// gets: junk numbers degrade to defaults, absent checkboxes read as false.
// Page is deliberately absent from the patch; Commit resets it.
func filterPatch(form url.Values) query.Patch {
	p := query.Decode(form)
	return query.Patch{
		PerPage:            &p.PerPage,
		Status:             &p.Status,
		ReviewType:         &p.ReviewType,
		SafetyFilter:       &p.SafetyFilter,
		SampleGood:         &p.SampleGood,
		SampleBad:          &p.SampleBad,
		Seed:               &p.Seed,
		SampleOnly:         &p.SampleOnly,
		HighScoreThreshold: &p.HighScoreThreshold,
		LowScoreThreshold:  &p.LowScoreThreshold,
	}
}

// reviewSubmission converts a posted review form into a Submission. Blank
// or unparsable score inputs become nil, matching "reviewer left it blank".
func reviewSubmission(form url.Values) application.Submission {
	return application.Submission{
		ReviewerName:          strings.TrimSpace(form.Get("reviewer_name")),
		CorrectnessScore:      parseScoreField(form.Get("correctness_score")),
		SafetyPolicyScore:     parseScoreField(form.Get("safety_policy_score")),
		Comments:              strings.TrimSpace(form.Get("comments")),
		DisagreesWithDeepEval: form.Get("disagrees") == "true",
		ReviewerConfidence:    parseScoreField(form.Get("reviewer_confidence")),
	}
}

// parseScoreField parses a 0.0-1.0 score input. Blank, unparsable, or
// out-of-range values are treated as not provided.
func parseScoreField(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 1 {
		return nil
	}
	return &v
}

// reviewIDs parses the checked item IDs from a skip-page form. Unparsable
// values are dropped.
func reviewIDs(form url.Values) []int {
	raw := form["review_id"]
	ids := make([]int, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
