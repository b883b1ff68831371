package application

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/evaldash/internal/domain/model"
	"github.com/ericfisherdev/evaldash/internal/domain/port/driven"
)

func newReviewService(client *mockReviewClient, profile *mockProfileStore) *ReviewService {
	return NewReviewService(client, profile, slog.Default())
}

func TestSubmit_RequiresReviewerName(t *testing.T) {
	svc := newReviewService(&mockReviewClient{}, newMockProfileStore())

	_, err := svc.Submit(context.Background(), 1, Submission{ReviewerName: "   "})

	assert.ErrorIs(t, err, ErrReviewerNameRequired)
}

func TestSubmit_MarksReviewedAndBuildsPayload(t *testing.T) {
	client := &mockReviewClient{item: &model.ReviewItem{ReviewID: 3, Status: model.StatusReviewed}}
	profile := newMockProfileStore()
	svc := newReviewService(client, profile)

	score := 0.75
	confidence := 0.9
	item, err := svc.Submit(context.Background(), 3, Submission{
		ReviewerName:          "ada",
		CorrectnessScore:      &score,
		Comments:              "borderline but acceptable",
		DisagreesWithDeepEval: true,
		ReviewerConfidence:    &confidence,
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusReviewed, item.Status)

	require.Len(t, client.updateCalls, 1)
	call := client.updateCalls[0]
	assert.Equal(t, 3, call.reviewID)
	require.NotNil(t, call.update.Status)
	assert.Equal(t, model.StatusReviewed, *call.update.Status)

	hr := call.update.HumanReview
	require.NotNil(t, hr)
	assert.Equal(t, "ada", *hr.ReviewerName)
	assert.Equal(t, 0.75, *hr.CorrectnessScore)
	assert.Equal(t, "borderline but acceptable", *hr.Comments)
	assert.True(t, *hr.DisagreesWithDeepEval)
	assert.Equal(t, 0.9, *hr.ReviewerConfidence)
}

func TestSubmit_RemembersReviewerProfile(t *testing.T) {
	client := &mockReviewClient{item: &model.ReviewItem{}}
	profile := newMockProfileStore()
	svc := newReviewService(client, profile)

	confidence := 0.8
	_, err := svc.Submit(context.Background(), 1, Submission{
		ReviewerName:       "grace",
		ReviewerConfidence: &confidence,
	})

	require.NoError(t, err)
	assert.Equal(t, "grace", profile.values[driven.ProfileKeyReviewerName])
	assert.Equal(t, "0.8", profile.values[driven.ProfileKeyReviewerConfidence])
}

func TestSkip_OnlyChangesStatus(t *testing.T) {
	client := &mockReviewClient{item: &model.ReviewItem{ReviewID: 4, Status: model.StatusSkipped}}
	svc := newReviewService(client, newMockProfileStore())

	_, err := svc.Skip(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, client.updateCalls, 1)
	call := client.updateCalls[0]
	assert.Equal(t, model.StatusSkipped, *call.update.Status)
	assert.Nil(t, call.update.HumanReview)
}

func TestSkipAll_BuildsBulkRequest(t *testing.T) {
	client := &mockReviewClient{bulk: &model.BulkUpdateResult{UpdatedCount: 3}}
	svc := newReviewService(client, newMockProfileStore())

	result, err := svc.SkipAll(context.Background(), []int{1, 2, 3})

	require.NoError(t, err)
	assert.Equal(t, 3, result.UpdatedCount)
	require.Len(t, client.bulkCalls, 1)
	require.Len(t, client.bulkCalls[0], 3)
	assert.Equal(t, 2, client.bulkCalls[0][1].ReviewID)
	assert.Equal(t, model.StatusSkipped, *client.bulkCalls[0][1].Status)
}

func TestSkipAll_EmptyListSkipsRequest(t *testing.T) {
	client := &mockReviewClient{}
	svc := newReviewService(client, newMockProfileStore())

	result, err := svc.SkipAll(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.UpdatedCount)
	assert.Empty(t, client.bulkCalls)
}

func TestReviewerName_StoreFailureIsNonFatal(t *testing.T) {
	profile := newMockProfileStore()
	profile.getErr = assert.AnError
	svc := newReviewService(&mockReviewClient{}, profile)

	assert.Equal(t, "", svc.ReviewerName(context.Background()))
}
