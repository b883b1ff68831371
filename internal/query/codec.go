package query

import (
	"net/url"
	"strconv"

	"github.com/ericfisherdev/evaldash/internal/domain/model"
)

// Query-string keys. Spellings are part of the review API contract;
// absence always means "use the default".
const (
	keyPage               = "page"
	keyPerPage            = "per_page"
	keyStatus             = "status"
	keyReviewType         = "review_type"
	keySafetyFilter       = "safety_filter"
	keySampleGood         = "sample_good"
	keySampleBad          = "sample_bad"
	keyHighScoreThreshold = "high_score_threshold"
	keyLowScoreThreshold  = "low_score_threshold"
	keyRandomSeed         = "random_seed"
	keySampleOnly         = "sample_only"
)

// Decode converts a URL query into a fully populated Params. Decode is
// total: malformed values never error, they degrade to the field's default
// (page, per_page, thresholds) or to unset (optional fields). Enum values
// are trusted as-is; the form layer and the upstream API own validation.
func Decode(q url.Values) Params {
	p := Defaults()

	p.Page = decodePositiveInt(q.Get(keyPage), DefaultPage)
	p.PerPage = decodePositiveInt(q.Get(keyPerPage), DefaultPerPage)

	p.Status = model.ReviewStatus(q.Get(keyStatus))
	p.ReviewType = model.ReviewType(q.Get(keyReviewType))
	p.SafetyFilter = model.SafetyFilter(q.Get(keySafetyFilter))

	p.SampleGood = decodeCount(q.Get(keySampleGood))
	p.SampleBad = decodeCount(q.Get(keySampleBad))
	p.Seed = decodeInt(q.Get(keyRandomSeed))

	p.HighScoreThreshold = decodeUnitFloat(q.Get(keyHighScoreThreshold), DefaultHighScoreThreshold)
	p.LowScoreThreshold = decodeUnitFloat(q.Get(keyLowScoreThreshold), DefaultLowScoreThreshold)

	// Only the literal "true" enables sample-only mode; every other value,
	// "false" included, decodes to false. Matches the wire contract.
	p.SampleOnly = q.Get(keySampleOnly) == "true"

	return p
}

// Encode converts a Params into its URL query form, writing a key only when
// the value differs from that field's default. Enum fields equal to the
// FilterAll sentinel encode as absent, so hand-edited "status=all" URLs
// normalize away on the next commit.
func Encode(p Params) url.Values {
	q := url.Values{}

	if p.Page != DefaultPage {
		q.Set(keyPage, strconv.Itoa(p.Page))
	}
	if p.PerPage != DefaultPerPage {
		q.Set(keyPerPage, strconv.Itoa(p.PerPage))
	}

	setEnum(q, keyStatus, string(p.Status))
	setEnum(q, keyReviewType, string(p.ReviewType))
	setEnum(q, keySafetyFilter, string(p.SafetyFilter))

	if p.SampleGood.Set {
		q.Set(keySampleGood, strconv.Itoa(p.SampleGood.Val))
	}
	if p.SampleBad.Set {
		q.Set(keySampleBad, strconv.Itoa(p.SampleBad.Val))
	}
	if p.Seed.Set {
		q.Set(keyRandomSeed, strconv.Itoa(p.Seed.Val))
	}

	if p.HighScoreThreshold != DefaultHighScoreThreshold {
		q.Set(keyHighScoreThreshold, formatFloat(p.HighScoreThreshold))
	}
	if p.LowScoreThreshold != DefaultLowScoreThreshold {
		q.Set(keyLowScoreThreshold, formatFloat(p.LowScoreThreshold))
	}

	if p.SampleOnly {
		q.Set(keySampleOnly, "true")
	}

	return q
}

func setEnum(q url.Values, key, value string) {
	if value == "" || value == FilterAll {
		return
	}
	q.Set(key, value)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// decodePositiveInt parses a required positive integer, falling back to
// def on absence, parse failure, or a non-positive value (the upstream
// contract declares these fields ge=1).
func decodePositiveInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}

// decodeCount parses an optional non-negative integer; anything else is
// unset.
func decodeCount(raw string) OptInt {
	if raw == "" {
		return OptInt{}
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return OptInt{}
	}
	return Int(v)
}

// decodeInt parses an optional integer of any sign; parse failures are
// unset.
func decodeInt(raw string) OptInt {
	if raw == "" {
		return OptInt{}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return OptInt{}
	}
	return Int(v)
}

// decodeUnitFloat parses a float constrained to [0,1], falling back to def
// on absence, parse failure, or an out-of-range value.
func decodeUnitFloat(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 1 {
		return def
	}
	return v
}
