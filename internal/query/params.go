// Package query implements the item-list parameter state: the typed
// filter/sampling/pagination configuration, the codec between that
// configuration and a URL query string, and the committed/draft controller
// that decides when form edits become fetch-worthy state.
package query

import "github.com/ericfisherdev/evaldash/internal/domain/model"

// Defaults for the fields that are always populated. Encoding a Params
// equal to Defaults() yields an empty query.
const (
	DefaultPage               = 1
	DefaultPerPage            = 10
	DefaultHighScoreThreshold = 0.8
	DefaultLowScoreThreshold  = 0.5
)

// FilterAll is the sentinel the review API accepts as "no filter". The
// codec never emits it; see Encode.
const FilterAll = "all"

// PerPageOptions are the page sizes the item table offers.
var PerPageOptions = []int{10, 20, 30, 50, 100}

// OptInt is an optional integer that stays comparable with ==, keeping
// Params a plain comparable value.
type OptInt struct {
	Val int
	Set bool
}

// Int returns an OptInt holding v.
func Int(v int) OptInt {
	return OptInt{Val: v, Set: true}
}

// Params is the full configuration of the item list. A Params value is
// always fully populated: optional fields carry an explicit unset state
// (zero-value enum, unset OptInt) rather than missing keys. Only the URL
// serialization is partial.
type Params struct {
	Page    int
	PerPage int

	Status       model.ReviewStatus
	ReviewType   model.ReviewType
	SafetyFilter model.SafetyFilter

	SampleGood OptInt
	SampleBad  OptInt
	Seed       OptInt
	SampleOnly bool

	HighScoreThreshold float64
	LowScoreThreshold  float64
}

// Defaults returns the configuration the dashboard starts from.
func Defaults() Params {
	return Params{
		Page:               DefaultPage,
		PerPage:            DefaultPerPage,
		HighScoreThreshold: DefaultHighScoreThreshold,
		LowScoreThreshold:  DefaultLowScoreThreshold,
	}
}

// Patch is a partial Params update; nil fields leave the target untouched.
type Patch struct {
	Page    *int
	PerPage *int

	Status       *model.ReviewStatus
	ReviewType   *model.ReviewType
	SafetyFilter *model.SafetyFilter

	SampleGood *OptInt
	SampleBad  *OptInt
	Seed       *OptInt
	SampleOnly *bool

	HighScoreThreshold *float64
	LowScoreThreshold  *float64
}

// Apply returns p with every non-nil patch field merged in.
func (p Params) Apply(patch Patch) Params {
	if patch.Page != nil {
		p.Page = *patch.Page
	}
	if patch.PerPage != nil {
		p.PerPage = *patch.PerPage
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.ReviewType != nil {
		p.ReviewType = *patch.ReviewType
	}
	if patch.SafetyFilter != nil {
		p.SafetyFilter = *patch.SafetyFilter
	}
	if patch.SampleGood != nil {
		p.SampleGood = *patch.SampleGood
	}
	if patch.SampleBad != nil {
		p.SampleBad = *patch.SampleBad
	}
	if patch.Seed != nil {
		p.Seed = *patch.Seed
	}
	if patch.SampleOnly != nil {
		p.SampleOnly = *patch.SampleOnly
	}
	if patch.HighScoreThreshold != nil {
		p.HighScoreThreshold = *patch.HighScoreThreshold
	}
	if patch.LowScoreThreshold != nil {
		p.LowScoreThreshold = *patch.LowScoreThreshold
	}
	return p
}
