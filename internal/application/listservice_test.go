package application

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/evaldash/internal/domain/model"
	"github.com/ericfisherdev/evaldash/internal/query"
)

func TestListService_InitialSyncFetchesCommitted(t *testing.T) {
	client := &mockReviewClient{page: &model.ItemPage{Total: 3, Page: 2}}
	ctrl := query.NewController(nil)
	svc := NewListService(client, ctrl)

	ctrl.Initialize(url.Values{"page": {"2"}})

	page, err := svc.Sync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, client.listCalls, 1)
	assert.Equal(t, 2, client.listCalls[0].Page)
}

func TestListService_SyncWithoutChangeDoesNotRefetch(t *testing.T) {
	client := &mockReviewClient{page: &model.ItemPage{}}
	ctrl := query.NewController(nil)
	svc := NewListService(client, ctrl)
	ctrl.Initialize(url.Values{})

	_, err := svc.Sync(context.Background())
	require.NoError(t, err)
	_, err = svc.Sync(context.Background())
	require.NoError(t, err)

	assert.Len(t, client.listCalls, 1, "unchanged committed state must not refetch")
}

func TestListService_DraftEditsDoNotFetch(t *testing.T) {
	client := &mockReviewClient{page: &model.ItemPage{}}
	ctrl := query.NewController(nil)
	svc := NewListService(client, ctrl)
	ctrl.Initialize(url.Values{})
	_, err := svc.Sync(context.Background())
	require.NoError(t, err)

	status := model.StatusReviewed
	ctrl.UpdateDraft(query.Patch{Status: &status})
	_, err = svc.Sync(context.Background())
	require.NoError(t, err)

	assert.Len(t, client.listCalls, 1, "only committed changes are fetch-worthy")
}

func TestListService_CommitTriggersRefetchWithPageReset(t *testing.T) {
	client := &mockReviewClient{page: &model.ItemPage{}}
	ctrl := query.NewController(nil)
	svc := NewListService(client, ctrl)
	ctrl.Initialize(url.Values{"page": {"5"}})
	_, err := svc.Sync(context.Background())
	require.NoError(t, err)

	status := model.StatusReviewed
	ctrl.UpdateDraft(query.Patch{Status: &status})
	ctrl.Commit()

	_, err = svc.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, client.listCalls, 2)
	assert.Equal(t, 1, client.listCalls[1].Page)
	assert.Equal(t, model.StatusReviewed, client.listCalls[1].Status)
}

func TestListService_FailedFetchRetriesOnNextSync(t *testing.T) {
	client := &mockReviewClient{err: errors.New("backend down")}
	ctrl := query.NewController(nil)
	svc := NewListService(client, ctrl)
	ctrl.Initialize(url.Values{})

	_, err := svc.Sync(context.Background())
	require.Error(t, err)

	client.err = nil
	client.page = &model.ItemPage{Total: 1}

	page, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, client.listCalls, 2)
}
