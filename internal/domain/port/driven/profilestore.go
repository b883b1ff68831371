package driven

import "context"

// Profile keys in use. Values are stored as plain strings; callers own any
// parsing.
const (
	ProfileKeyReviewerName       = "reviewer_name"
	ProfileKeyReviewerConfidence = "reviewer_confidence"
)

// ProfileStore defines the driven port for local reviewer-profile
// persistence, a small key-value store. The browser original kept this in
// localStorage; here it lives server-side so the profile follows the
// reviewer across sessions.
type ProfileStore interface {
	// Get retrieves the value for key. Returns ("", nil) when the key has
	// never been set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Clear removes every stored profile key.
	Clear(ctx context.Context) error
}
