package service

import (
	"context"
	"errors"
	"time"

	"github.com/reviewmarket/review_dashboard/internal/events"
	"github.com/reviewmarket/review_dashboard/internal/logging"
	"github.com/reviewmarket/review_dashboard/internal/models"
	"github.com/reviewmarket/review_dashboard/internal/repo"
	"github.com/reviewmarket/review_dashboard/internal/search"
)

var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
)

// AdminService validates and orchestrates every dashboard operation.
// Producer and Index are optional collaborators; when nil the service
// skips event publishing and search-index maintenance.
type AdminService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Index    *search.Index
}

func NewAdminService(r *repo.GormRepo, p *events.Producer, idx *search.Index) *AdminService {
	return &AdminService{Repo: r, Producer: p, Index: idx}
}

// publish emits an audit event. Publishing is best effort: a broker
// failure is logged and never fails the mutation that triggered it.
func (s *AdminService) publish(ctx context.Context, topic, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_error", "topic", topic, "error", err)
	}
}

func (s *AdminService) indexReview(ctx context.Context, review models.Review) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexReview(ctx, review); err != nil {
		logging.FromContext(ctx).Error("review_index_error", "review_id", review.ReviewID, "error", err)
	}
}

func (s *AdminService) dropReviewDocs(ctx context.Context, reviewIDs []int) {
	if s.Index == nil {
		return
	}
	for _, id := range reviewIDs {
		if err := s.Index.DeleteReview(ctx, id); err != nil {
			logging.FromContext(ctx).Error("review_index_delete_error", "review_id", id, "error", err)
		}
	}
}
