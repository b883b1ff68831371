package query

import "net/url"

// Publisher receives the encoded query whenever the controller commits or
// resets. The host must route the published query back into OnQueryChange —
// synchronously, or through its navigation cycle (e.g. an HTTP redirect) —
// so committed state always derives from the current URL.
type Publisher interface {
	Publish(q url.Values)
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(q url.Values)

// Publish calls f(q).
func (f PublisherFunc) Publish(q url.Values) { f(q) }

// Controller owns the committed/draft Params pair for one mounted item
// list. Committed always equals the decoded current URL and is the only
// value the fetch layer keys off; Draft accumulates form edits until
// Commit pushes them into the URL. A Controller is confined to the
// goroutine handling its view's events and does no locking.
type Controller struct {
	committed Params
	draft     Params
	publisher Publisher
	subs      []func(Params)
}

// NewController creates a Controller that publishes committed queries
// through pub. A nil pub loops published queries straight back into
// OnQueryChange, which is what embedded (non-browser) hosts and tests want.
func NewController(pub Publisher) *Controller {
	return &Controller{
		committed: Defaults(),
		draft:     Defaults(),
		publisher: pub,
	}
}

// Initialize decodes the current URL query into committed state and syncs
// the draft to it. Subscribers are notified so the initial fetch runs.
func (c *Controller) Initialize(q url.Values) {
	c.committed = Decode(q)
	c.draft = c.committed
	c.notify()
}

// OnQueryChange is invoked whenever the URL changes through any means:
// back/forward navigation, a programmatic commit, or a direct link. The
// committed state is recomputed and the draft unconditionally overwritten,
// in that order, so no observer sees a stale draft next to a fresh
// committed value. Subscribers fire only when the committed value actually
// changed; a navigation that decodes to the identical configuration must
// not trigger a refetch.
func (c *Controller) OnQueryChange(q url.Values) {
	next := Decode(q)
	changed := next != c.committed
	c.committed = next
	c.draft = next
	if changed {
		c.notify()
	}
}

// UpdateDraft merges the patch into the draft. Committed state and
// subscribers are untouched; nothing refetches until Commit.
func (c *Controller) UpdateDraft(patch Patch) {
	c.draft = c.draft.Apply(patch)
}

// Commit publishes the draft as the new URL query. The page is forced back
// to 1 first: committing a changed filter must not strand the reviewer on
// a page number from the previous result set.
func (c *Controller) Commit() {
	d := c.draft
	d.Page = DefaultPage
	c.publish(Encode(d))
}

// Reset restores the draft to Defaults and publishes the empty query,
// which is Encode(Defaults()) by the omission rule.
func (c *Controller) Reset() {
	c.draft = Defaults()
	c.publish(url.Values{})
}

// Committed returns the configuration currently reflected in the URL.
func (c *Controller) Committed() Params { return c.committed }

// Draft returns the configuration under edit in the filter form.
func (c *Controller) Draft() Params { return c.draft }

// Diverged reports whether the draft has uncommitted edits.
func (c *Controller) Diverged() bool { return c.draft != c.committed }

// Subscribe registers fn to run with the new committed Params after every
// committed-value change. It returns a cancel function.
func (c *Controller) Subscribe(fn func(Params)) (cancel func()) {
	c.subs = append(c.subs, fn)
	i := len(c.subs) - 1
	return func() { c.subs[i] = nil }
}

func (c *Controller) publish(q url.Values) {
	if c.publisher != nil {
		c.publisher.Publish(q)
		return
	}
	c.OnQueryChange(q)
}

func (c *Controller) notify() {
	for _, fn := range c.subs {
		if fn != nil {
			fn(c.committed)
		}
	}
}
