package application

import (
	"context"

	"github.com/ericfisherdev/evaldash/internal/domain/model"
	"github.com/ericfisherdev/evaldash/internal/query"
)

// --- Mock implementations ---

type mockReviewClient struct {
	page        *model.ItemPage
	item        *model.ReviewItem
	bulk        *model.BulkUpdateResult
	err         error
	listCalls   []query.Params
	updateCalls []updateCall
	bulkCalls   [][]model.BulkItemUpdate
}

type updateCall struct {
	reviewID int
	update   model.ItemUpdate
}

func (m *mockReviewClient) ListItems(_ context.Context, params query.Params) (*model.ItemPage, error) {
	m.listCalls = append(m.listCalls, params)
	return m.page, m.err
}

func (m *mockReviewClient) GetItem(_ context.Context, _ int) (*model.ReviewItem, error) {
	return m.item, m.err
}

func (m *mockReviewClient) UpdateItem(_ context.Context, reviewID int, update model.ItemUpdate) (*model.ReviewItem, error) {
	m.updateCalls = append(m.updateCalls, updateCall{reviewID: reviewID, update: update})
	return m.item, m.err
}

func (m *mockReviewClient) BulkUpdate(_ context.Context, updates []model.BulkItemUpdate) (*model.BulkUpdateResult, error) {
	m.bulkCalls = append(m.bulkCalls, updates)
	return m.bulk, m.err
}

func (m *mockReviewClient) Summary(_ context.Context) (*model.Summary, error) {
	return &model.Summary{}, m.err
}

func (m *mockReviewClient) Health(_ context.Context) error { return m.err }

type mockProfileStore struct {
	values map[string]string
	getErr error
	setErr error
}

func newMockProfileStore() *mockProfileStore {
	return &mockProfileStore{values: map[string]string{}}
}

func (m *mockProfileStore) Get(_ context.Context, key string) (string, error) {
	return m.values[key], m.getErr
}

func (m *mockProfileStore) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockProfileStore) Clear(_ context.Context) error {
	m.values = map[string]string{}
	return nil
}
