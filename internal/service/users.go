package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/reviewmarket/review_dashboard/internal/events"
	"github.com/reviewmarket/review_dashboard/internal/logging"
	"github.com/reviewmarket/review_dashboard/internal/models"
	"github.com/reviewmarket/review_dashboard/internal/query"
)

func (s *AdminService) GetAllUsers(ctx context.Context, filter query.UserFilter, sort *query.Sort) ([]models.User, error) {
	return s.Repo.GetUsers(ctx, filter, sort)
}

func (s *AdminService) BlockUser(ctx context.Context, uuid string) (*models.User, error) {
	return s.setUserBlocked(ctx, uuid, true)
}

func (s *AdminService) UnblockUser(ctx context.Context, uuid string) (*models.User, error) {
	return s.setUserBlocked(ctx, uuid, false)
}

func (s *AdminService) setUserBlocked(ctx context.Context, uuid string, blocked bool) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "admin.block_user", "user_id", uuid, "blocked", blocked)

	user, err := s.Repo.GetUser(ctx, uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("user_block_error", "reason", "user not found")
			return nil, fmt.Errorf("user %s: %w", uuid, ErrNotFound)
		}
		return nil, err
	}

	user.IsBlocked = blocked
	saved, err := s.Repo.SaveUser(ctx, user)
	if err != nil {
		l.Error("user_block_error", "reason", "cannot save user", "error", err)
		return nil, err
	}

	eventType := "user_blocked"
	if !blocked {
		eventType = "user_unblocked"
	}
	s.publish(ctx, events.TopicUserModeration, saved.UUID, map[string]any{
		"type":   eventType,
		"userID": saved.UUID,
	})

	l.Info("user_block_success")
	return saved, nil
}

// DeleteUser hard-deletes the user and cascades to their reviews. The
// returned user is the last-known state of the removed row.
func (s *AdminService) DeleteUser(ctx context.Context, uuid string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "admin.delete_user", "user_id", uuid)

	user, err := s.Repo.GetUser(ctx, uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("user_delete_error", "reason", "user not found")
			return nil, fmt.Errorf("user %s: %w", uuid, ErrNotFound)
		}
		return nil, err
	}

	reviewIDs, err := s.Repo.ReviewIDsByUser(ctx, uuid)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.DeleteUser(ctx, uuid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", uuid, ErrNotFound)
		}
		l.Error("user_delete_error", "reason", "cannot delete user", "error", err)
		return nil, err
	}

	s.dropReviewDocs(ctx, reviewIDs)
	s.publish(ctx, events.TopicUserModeration, uuid, map[string]any{
		"type":   "user_deleted",
		"userID": uuid,
	})

	l.Info("user_delete_success", "cascaded_reviews", len(reviewIDs))
	return user, nil
}
