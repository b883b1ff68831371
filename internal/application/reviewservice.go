package application

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ericfisherdev/evaldash/internal/domain/model"
	"github.com/ericfisherdev/evaldash/internal/domain/port/driven"
)

// ErrReviewerNameRequired is returned by Submit when the submission carries
// no reviewer name. Validated here so every driving adapter gets the same
// rule.
var ErrReviewerNameRequired = errors.New("reviewer name is required")

// Submission is one human judgment as collected by the review form. Nil
// score pointers mean the reviewer left the field blank.
type Submission struct {
	ReviewerName          string
	CorrectnessScore      *float64
	SafetyPolicyScore     *float64
	Comments              string
	DisagreesWithDeepEval bool
	ReviewerConfidence    *float64
}

// ReviewService submits human judgments to the review API and keeps the
// local reviewer profile in step with what was submitted.
type ReviewService struct {
	client  driven.ReviewClient
	profile driven.ProfileStore
	logger  *slog.Logger
}

// NewReviewService creates a ReviewService with the required dependencies.
func NewReviewService(client driven.ReviewClient, profile driven.ProfileStore, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		client:  client,
		profile: profile,
		logger:  logger,
	}
}

// Submit marks the item reviewed with the given judgment. The reviewer name
// is required; everything else is optional. On success the reviewer name
// and confidence are remembered in the profile store for the next form.
func (s *ReviewService) Submit(ctx context.Context, reviewID int, sub Submission) (*model.ReviewItem, error) {
	name := strings.TrimSpace(sub.ReviewerName)
	if name == "" {
		return nil, ErrReviewerNameRequired
	}

	status := model.StatusReviewed
	disagrees := sub.DisagreesWithDeepEval
	comments := sub.Comments

	update := model.ItemUpdate{
		Status: &status,
		HumanReview: &model.HumanReviewInput{
			ReviewerName:          &name,
			CorrectnessScore:      sub.CorrectnessScore,
			SafetyPolicyScore:     sub.SafetyPolicyScore,
			DisagreesWithDeepEval: &disagrees,
			ReviewerConfidence:    sub.ReviewerConfidence,
		},
	}
	if comments != "" {
		update.HumanReview.Comments = &comments
	}

	item, err := s.client.UpdateItem(ctx, reviewID, update)
	if err != nil {
		return nil, err
	}

	s.rememberProfile(ctx, name, sub.ReviewerConfidence)
	return item, nil
}

// Skip marks a single item skipped without touching its human review.
func (s *ReviewService) Skip(ctx context.Context, reviewID int) (*model.ReviewItem, error) {
	status := model.StatusSkipped
	return s.client.UpdateItem(ctx, reviewID, model.ItemUpdate{Status: &status})
}

// SkipAll marks every given item skipped in one bulk request. Items the
// backend could not update are reported in the result's Errors.
func (s *ReviewService) SkipAll(ctx context.Context, reviewIDs []int) (*model.BulkUpdateResult, error) {
	if len(reviewIDs) == 0 {
		return &model.BulkUpdateResult{}, nil
	}

	status := model.StatusSkipped
	updates := make([]model.BulkItemUpdate, 0, len(reviewIDs))
	for _, id := range reviewIDs {
		updates = append(updates, model.BulkItemUpdate{ReviewID: id, Status: &status})
	}

	return s.client.BulkUpdate(ctx, updates)
}

// ReviewerName returns the remembered reviewer name, or "" when none was
// stored yet. Store failures are logged, not surfaced: prefilling a form is
// never worth failing a page render.
func (s *ReviewService) ReviewerName(ctx context.Context) string {
	name, err := s.profile.Get(ctx, driven.ProfileKeyReviewerName)
	if err != nil {
		s.logger.Warn("failed to load reviewer profile", "error", err)
		return ""
	}
	return name
}

func (s *ReviewService) rememberProfile(ctx context.Context, name string, confidence *float64) {
	if err := s.profile.Set(ctx, driven.ProfileKeyReviewerName, name); err != nil {
		s.logger.Warn("failed to persist reviewer name", "error", err)
	}
	if confidence != nil {
		if err := s.profile.Set(ctx, driven.ProfileKeyReviewerConfidence, strconv.FormatFloat(*confidence, 'f', -1, 64)); err != nil {
			s.logger.Warn("failed to persist reviewer confidence", "error", err)
		}
	}
}
