// Package application contains the dashboard's use-case services. Services
// depend only on port interfaces.
package application

import (
	"context"

	"github.com/ericfisherdev/evaldash/internal/domain/model"
	"github.com/ericfisherdev/evaldash/internal/domain/port/driven"
	"github.com/ericfisherdev/evaldash/internal/query"
)

// ListService is the fetching collaborator of the parameter controller. It
// subscribes to committed-parameter changes and re-fetches the item page
// only when the committed value actually moved; draft edits never cost a
// round-trip. Like the controller it serves, a ListService belongs to one
// mounted list view and is not safe for concurrent use.
type ListService struct {
	client driven.ReviewClient
	ctrl   *query.Controller

	pending *query.Params // set by the subscription, consumed by Sync
	page    *model.ItemPage
}

// NewListService creates a ListService subscribed to ctrl. Subscribe before
// Initialize so the initial committed value triggers the first fetch.
func NewListService(client driven.ReviewClient, ctrl *query.Controller) *ListService {
	s := &ListService{client: client, ctrl: ctrl}
	ctrl.Subscribe(func(p query.Params) {
		committed := p
		s.pending = &committed
	})
	return s
}

// Sync performs the fetch for the latest committed parameters when they
// changed since the last successful fetch, then returns the current page.
// A failed fetch stays pending, so the next Sync retries it.
func (s *ListService) Sync(ctx context.Context) (*model.ItemPage, error) {
	if s.pending == nil {
		return s.page, nil
	}

	params := *s.pending
	s.pending = nil

	page, err := s.client.ListItems(ctx, params)
	if err != nil {
		s.pending = &params
		return nil, err
	}

	s.page = page
	return s.page, nil
}
