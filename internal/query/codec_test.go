package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/evaldash/internal/domain/model"
)

func TestEncode_DefaultsYieldEmptyQuery(t *testing.T) {
	q := Encode(Defaults())

	assert.Empty(t, q)
	assert.Equal(t, "", q.Encode())
}

func TestDecode_EmptyQueryYieldsDefaults(t *testing.T) {
	p := Decode(url.Values{})

	assert.Equal(t, Defaults(), p)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
	}{
		{"defaults", Patch{}},
		{"page and per_page", Patch{Page: intPtr(3), PerPage: intPtr(50)}},
		{"status filter", Patch{Status: statusPtr(model.StatusReviewed)}},
		{"review type filter", Patch{ReviewType: typePtr(model.ReviewTypeBadSample)}},
		{"safety filter", Patch{SafetyFilter: safetyPtr(model.SafetyUnsafe)}},
		{"sampling", Patch{SampleGood: optPtr(Int(5)), SampleBad: optPtr(Int(3)), Seed: optPtr(Int(-42))}},
		{"zero sample size", Patch{SampleGood: optPtr(Int(0))}},
		{"thresholds", Patch{HighScoreThreshold: floatPtr(0.9), LowScoreThreshold: floatPtr(0.25)}},
		{"sample only", Patch{SampleOnly: boolPtr(true)}},
		{
			"everything at once",
			Patch{
				Page:               intPtr(7),
				PerPage:            intPtr(100),
				Status:             statusPtr(model.StatusPending),
				ReviewType:         typePtr(model.ReviewTypeAmbiguous),
				SafetyFilter:       safetyPtr(model.SafetySafe),
				SampleGood:         optPtr(Int(10)),
				SampleBad:          optPtr(Int(2)),
				Seed:               optPtr(Int(1234)),
				SampleOnly:         boolPtr(true),
				HighScoreThreshold: floatPtr(0.75),
				LowScoreThreshold:  floatPtr(0.4),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults().Apply(tt.patch)

			assert.Equal(t, c, Decode(Encode(c)), "decode(encode(c)) must reconstruct c")
		})
	}
}

func TestEncode_Idempotence(t *testing.T) {
	c := Defaults().Apply(Patch{
		Status:     statusPtr(model.StatusReviewed),
		SampleGood: optPtr(Int(5)),
		PerPage:    intPtr(20),
	})

	once := Encode(c)
	again := Encode(Decode(once))

	assert.Equal(t, once, again)
}

func TestDecode_MalformedValuesDegrade(t *testing.T) {
	q := url.Values{
		"page":                 {"abc"},
		"per_page":             {"0"},
		"sample_good":          {"-3"},
		"sample_bad":           {"lots"},
		"random_seed":          {"4.5"},
		"high_score_threshold": {"1.5"},
		"low_score_threshold":  {"NaNish"},
	}

	p := Decode(q)

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.False(t, p.SampleGood.Set)
	assert.False(t, p.SampleBad.Set)
	assert.False(t, p.Seed.Set)
	assert.Equal(t, DefaultHighScoreThreshold, p.HighScoreThreshold)
	assert.Equal(t, DefaultLowScoreThreshold, p.LowScoreThreshold)
}

// An explicit value equal to the default must normalize: the decoded
// configuration equals Defaults() and re-encoding drops the key.
func TestDecode_ExplicitDefaultNormalizes(t *testing.T) {
	q, err := url.ParseQuery("high_score_threshold=0.8")
	require.NoError(t, err)

	p := Decode(q)

	assert.Equal(t, Defaults(), p)
	assert.Empty(t, Encode(p))
}

func TestDecode_SampleOnlyLiteralTrueOnly(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"TRUE", false},
		{"1", false},
		{"", false},
	}

	for _, tt := range tests {
		p := Decode(url.Values{"sample_only": {tt.raw}})
		assert.Equal(t, tt.want, p.SampleOnly, "sample_only=%q", tt.raw)
	}
}

func TestDecode_EnumsTrustedAsIs(t *testing.T) {
	p := Decode(url.Values{"status": {"bogus"}})

	assert.Equal(t, model.ReviewStatus("bogus"), p.Status)
}

func TestEncode_DropsAllSentinel(t *testing.T) {
	c := Defaults()
	c.Status = model.ReviewStatus(FilterAll)
	c.ReviewType = model.ReviewType(FilterAll)
	c.SafetyFilter = model.SafetyFilter(FilterAll)

	assert.Empty(t, Encode(c))
}

func TestEncode_WritesOnlyNonDefaultFields(t *testing.T) {
	c := Defaults().Apply(Patch{
		Status:     statusPtr(model.StatusReviewed),
		SampleGood: optPtr(Int(5)),
	})

	q := Encode(c)

	assert.Equal(t, url.Values{
		"status":      {"reviewed"},
		"sample_good": {"5"},
	}, q)
}

// --- pointer helpers for Patch literals ---

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }

func optPtr(v OptInt) *OptInt { return &v }

func statusPtr(v model.ReviewStatus) *model.ReviewStatus { return &v }

func typePtr(v model.ReviewType) *model.ReviewType { return &v }

func safetyPtr(v model.SafetyFilter) *model.SafetyFilter { return &v }
