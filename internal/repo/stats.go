package repo

import (
	"context"

	"github.com/reviewmarket/review_dashboard/internal/models"
)

type ProductReviewCount struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"product_name"`
	ReviewCount int    `json:"reviewCount"`
}

type ProductAverageRating struct {
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"product_name"`
	AverageRating float64 `json:"averageRating"`
}

type UserReviewCount struct {
	UserID      string  `json:"userId"`
	UserName    *string `json:"userName"`
	ReviewCount int     `json:"reviewCount"`
}

// CountReviewsByProduct groups all reviews by product, counts each group and
// joins in the product name. Groups without a grouping key are dropped after
// aggregation; they can appear when a review was orphaned by a concurrent
// cascade delete.
func (r *GormRepo) CountReviewsByProduct(ctx context.Context) ([]ProductReviewCount, error) {
	var rows []ProductReviewCount
	if err := r.DB.WithContext(ctx).Model(&models.Review{}).
		Select("reviews.product_id AS product_id, products.name AS product_name, COUNT(reviews.review_id) AS review_count").
		Joins("LEFT JOIN products ON products.id = reviews.product_id").
		Group("reviews.product_id, products.name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make([]ProductReviewCount, 0, len(rows))
	for _, row := range rows {
		if row.ProductID == "" {
			continue
		}
		counts = append(counts, row)
	}
	return counts, nil
}

func (r *GormRepo) AverageRatingByProduct(ctx context.Context) ([]ProductAverageRating, error) {
	var rows []ProductAverageRating
	if err := r.DB.WithContext(ctx).Model(&models.Review{}).
		Select("reviews.product_id AS product_id, products.name AS product_name, AVG(reviews.rating) AS average_rating").
		Joins("LEFT JOIN products ON products.id = reviews.product_id").
		Group("reviews.product_id, products.name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	ratings := make([]ProductAverageRating, 0, len(rows))
	for _, row := range rows {
		if row.ProductID == "" {
			continue
		}
		ratings = append(ratings, row)
	}
	return ratings, nil
}

func (r *GormRepo) CountReviewsByUser(ctx context.Context) ([]UserReviewCount, error) {
	var rows []UserReviewCount
	if err := r.DB.WithContext(ctx).Model(&models.Review{}).
		Select("reviews.user_id AS user_id, users.user_name AS user_name, COUNT(reviews.review_id) AS review_count").
		Joins("LEFT JOIN users ON users.uuid = reviews.user_id").
		Group("reviews.user_id, users.user_name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make([]UserReviewCount, 0, len(rows))
	for _, row := range rows {
		if row.UserID == "" {
			continue
		}
		counts = append(counts, row)
	}
	return counts, nil
}
