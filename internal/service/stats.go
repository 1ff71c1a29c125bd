package service

import (
	"context"

	"github.com/reviewmarket/review_dashboard/internal/repo"
)

func (s *AdminService) GetReviewCounts(ctx context.Context) ([]repo.ProductReviewCount, error) {
	return s.Repo.CountReviewsByProduct(ctx)
}

func (s *AdminService) GetAverageRatings(ctx context.Context) ([]repo.ProductAverageRating, error) {
	return s.Repo.AverageRatingByProduct(ctx)
}

func (s *AdminService) GetUserReviewCounts(ctx context.Context) ([]repo.UserReviewCount, error) {
	return s.Repo.CountReviewsByUser(ctx)
}
