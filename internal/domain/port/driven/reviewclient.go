// Package driven defines the driven-side port interfaces the application
// layer depends on.
package driven

import (
	"context"

	"github.com/ericfisherdev/evaldash/internal/domain/model"
	"github.com/ericfisherdev/evaldash/internal/query"
)

// ReviewClient defines the driven port for the external HITL review API.
// Filtering, sampling, and pagination happen upstream; the client only
// carries the encoded parameters across.
type ReviewClient interface {
	// ListItems fetches one page of review items for the given parameters.
	// Fields equal to their defaults are omitted from the request query.
	ListItems(ctx context.Context, params query.Params) (*model.ItemPage, error)

	// GetItem fetches a single item by review ID.
	// Returns (nil, nil) when the item does not exist.
	GetItem(ctx context.Context, reviewID int) (*model.ReviewItem, error)

	// UpdateItem applies a status and/or human-review update to one item
	// and returns the updated item as stored upstream.
	UpdateItem(ctx context.Context, reviewID int, update model.ItemUpdate) (*model.ReviewItem, error)

	// BulkUpdate applies several item updates in one request.
	BulkUpdate(ctx context.Context, updates []model.BulkItemUpdate) (*model.BulkUpdateResult, error)

	// Summary fetches the review-progress snapshot.
	Summary(ctx context.Context) (*model.Summary, error)

	// Health reports whether the review API is reachable and has a review
	// file loaded.
	Health(ctx context.Context) error
}
