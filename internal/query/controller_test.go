package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/evaldash/internal/domain/model"
)

func TestController_InitializeSyncsDraftAndNotifies(t *testing.T) {
	c := NewController(nil)

	var notified []Params
	c.Subscribe(func(p Params) { notified = append(notified, p) })

	q, err := url.ParseQuery("status=pending&page=2")
	require.NoError(t, err)
	c.Initialize(q)

	want := Defaults()
	want.Status = model.StatusPending
	want.Page = 2

	assert.Equal(t, want, c.Committed())
	assert.Equal(t, want, c.Draft())
	assert.False(t, c.Diverged())
	require.Len(t, notified, 1)
	assert.Equal(t, want, notified[0])
}

func TestController_UpdateDraftDivergesWithoutNotify(t *testing.T) {
	c := NewController(nil)
	c.Initialize(url.Values{})

	fired := 0
	c.Subscribe(func(Params) { fired++ })

	c.UpdateDraft(Patch{Status: statusPtr(model.StatusReviewed)})

	assert.True(t, c.Diverged())
	assert.Equal(t, Defaults(), c.Committed(), "draft edits must not touch committed state")
	assert.Equal(t, 0, fired, "draft edits must not trigger a fetch")
}

func TestController_CommitResetsPage(t *testing.T) {
	c := NewController(nil)
	c.Initialize(url.Values{"page": {"5"}})

	c.UpdateDraft(Patch{Status: statusPtr(model.StatusReviewed)})
	require.Equal(t, 5, c.Draft().Page)

	c.Commit()

	assert.Equal(t, 1, c.Committed().Page)
	assert.Equal(t, model.StatusReviewed, c.Committed().Status)
	assert.False(t, c.Diverged())
}

// Concrete scenario from the wire contract: from defaults, set status and
// sample_good, commit. The published query carries exactly those two keys;
// page is omitted because the forced value 1 equals its default.
func TestController_CommitPublishesMinimalQuery(t *testing.T) {
	var published url.Values
	c := NewController(PublisherFunc(func(q url.Values) { published = q }))
	c.Initialize(url.Values{})

	c.UpdateDraft(Patch{
		Status:     statusPtr(model.StatusReviewed),
		SampleGood: optPtr(Int(5)),
	})
	c.Commit()

	assert.Equal(t, url.Values{
		"status":      {"reviewed"},
		"sample_good": {"5"},
	}, published)
}

func TestController_ResetPublishesEmptyQuery(t *testing.T) {
	c := NewController(nil)
	c.Initialize(url.Values{"status": {"skipped"}, "per_page": {"50"}})
	c.UpdateDraft(Patch{SampleBad: optPtr(Int(9))})

	c.Reset()

	assert.Equal(t, Defaults(), c.Committed())
	assert.Equal(t, Defaults(), c.Draft())
}

func TestController_ExternalChangeResyncsDivergedDraft(t *testing.T) {
	c := NewController(nil)
	c.Initialize(url.Values{})
	c.UpdateDraft(Patch{Status: statusPtr(model.StatusReviewed)})
	require.True(t, c.Diverged())

	// Browser back/forward lands on a different query.
	c.OnQueryChange(url.Values{"review_type": {"bad_sample"}})

	want := Defaults()
	want.ReviewType = model.ReviewTypeBadSample

	assert.Equal(t, want, c.Committed())
	assert.Equal(t, want, c.Draft(), "navigation must restore the filter panel, not just the list")
}

func TestController_ExternalChangeToEqualValueDoesNotNotify(t *testing.T) {
	c := NewController(nil)
	c.Initialize(url.Values{})
	c.UpdateDraft(Patch{Status: statusPtr(model.StatusReviewed)})

	fired := 0
	c.Subscribe(func(Params) { fired++ })

	// high_score_threshold=0.8 decodes to the default configuration, which
	// is what committed already holds. Draft resyncs, fetch does not re-run.
	c.OnQueryChange(url.Values{"high_score_threshold": {"0.8"}})

	assert.Equal(t, 0, fired)
	assert.False(t, c.Diverged())
	assert.Equal(t, Defaults(), c.Draft())
}

func TestController_SubscribeCancel(t *testing.T) {
	c := NewController(nil)

	fired := 0
	cancel := c.Subscribe(func(Params) { fired++ })
	cancel()

	c.Initialize(url.Values{"page": {"3"}})

	assert.Equal(t, 0, fired)
}

// With an external publisher the commit loop runs through the host: the
// controller publishes, and committed state only moves once the host feeds
// the query back into OnQueryChange. This mirrors the HTTP redirect cycle.
func TestController_ExternalPublisherClosesLoopViaHost(t *testing.T) {
	var published url.Values
	c := NewController(PublisherFunc(func(q url.Values) { published = q }))
	c.Initialize(url.Values{})

	c.UpdateDraft(Patch{Status: statusPtr(model.StatusSkipped)})
	c.Commit()

	assert.Equal(t, Defaults(), c.Committed(), "committed must wait for the host round-trip")
	require.NotNil(t, published)

	c.OnQueryChange(published)

	assert.Equal(t, model.StatusSkipped, c.Committed().Status)
	assert.False(t, c.Diverged())
}
