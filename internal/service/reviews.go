package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/reviewmarket/review_dashboard/internal/events"
	"github.com/reviewmarket/review_dashboard/internal/logging"
	"github.com/reviewmarket/review_dashboard/internal/models"
	"github.com/reviewmarket/review_dashboard/internal/query"
	"github.com/reviewmarket/review_dashboard/internal/repo"
)

func (s *AdminService) GetAllReviews(ctx context.Context, filter query.ReviewFilter, sort *query.Sort) ([]repo.ReviewWithNames, error) {
	return s.Repo.GetReviews(ctx, filter, sort)
}

func (s *AdminService) UpdateReviewContent(ctx context.Context, reviewID int, content string) (*models.Review, error) {
	l := logging.FromContext(ctx).With("svc", "admin.update_review_content", "review_id", reviewID)

	if len(content) < 1 || len(content) > 100 {
		l.Warn("review_update_error", "reason", "content length out of range", "length", len(content))
		return nil, fmt.Errorf("content must be between 1 and 100 characters: %w", ErrValidation)
	}

	review, err := s.Repo.GetReview(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("review_update_error", "reason", "review not found")
			return nil, fmt.Errorf("review %d: %w", reviewID, ErrNotFound)
		}
		return nil, err
	}

	review.Content = content
	saved, err := s.Repo.SaveReview(ctx, review)
	if err != nil {
		l.Error("review_update_error", "reason", "cannot save review", "error", err)
		return nil, err
	}

	s.indexReview(ctx, *saved)
	s.publish(ctx, events.TopicReviewModeration, strconv.Itoa(saved.ReviewID), map[string]any{
		"type":     "review_content_updated",
		"reviewID": saved.ReviewID,
	})

	l.Info("review_update_success")
	return saved, nil
}

// DeleteReview soft-deletes: the row keeps its identifier and stays
// visible to getAllReviews(isDeleted: true).
func (s *AdminService) DeleteReview(ctx context.Context, reviewID int) (*models.Review, error) {
	return s.setReviewFlag(ctx, reviewID, "review_deleted", func(r *models.Review) {
		r.IsDeleted = true
	})
}

func (s *AdminService) FlagReview(ctx context.Context, reviewID int) (*models.Review, error) {
	return s.setReviewFlag(ctx, reviewID, "review_flagged", func(r *models.Review) {
		r.IsFlagged = true
	})
}

func (s *AdminService) UnflagReview(ctx context.Context, reviewID int) (*models.Review, error) {
	return s.setReviewFlag(ctx, reviewID, "review_unflagged", func(r *models.Review) {
		r.IsFlagged = false
	})
}

func (s *AdminService) setReviewFlag(ctx context.Context, reviewID int, eventType string, mutate func(*models.Review)) (*models.Review, error) {
	l := logging.FromContext(ctx).With("svc", "admin."+eventType, "review_id", reviewID)

	review, err := s.Repo.GetReview(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("review_moderation_error", "reason", "review not found")
			return nil, fmt.Errorf("review %d: %w", reviewID, ErrNotFound)
		}
		return nil, err
	}

	mutate(review)
	saved, err := s.Repo.SaveReview(ctx, review)
	if err != nil {
		l.Error("review_moderation_error", "reason", "cannot save review", "error", err)
		return nil, err
	}

	s.indexReview(ctx, *saved)
	s.publish(ctx, events.TopicReviewModeration, strconv.Itoa(saved.ReviewID), map[string]any{
		"type":     eventType,
		"reviewID": saved.ReviewID,
	})

	l.Info("review_moderation_success", "event", eventType)
	return saved, nil
}

// SearchReviews runs a fuzzy full-text query over review content.
func (s *AdminService) SearchReviews(ctx context.Context, q string) ([]models.Review, error) {
	if s.Index == nil {
		return nil, errors.New("review search is not configured")
	}
	if q == "" {
		return nil, fmt.Errorf("search query must not be empty: %w", ErrValidation)
	}
	return s.Index.Search(ctx, q)
}
