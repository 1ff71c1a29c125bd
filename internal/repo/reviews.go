package repo

import (
	"context"

	"github.com/reviewmarket/review_dashboard/internal/models"
	"github.com/reviewmarket/review_dashboard/internal/query"
)

// ReviewWithNames is a review row enriched with the display names of its
// product and author. The names are resolved by LEFT JOIN at query time,
// so they are nil when the referenced row no longer exists.
type ReviewWithNames struct {
	models.Review
	ProductName *string `json:"product_name"`
	UserName    *string `json:"user_name"`
}

func (r *GormRepo) GetReview(ctx context.Context, reviewID int) (*models.Review, error) {
	review := models.Review{}
	if err := r.DB.WithContext(ctx).Where("review_id = ?", reviewID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *GormRepo) GetReviews(ctx context.Context, filter query.ReviewFilter, sort *query.Sort) ([]ReviewWithNames, error) {
	q := r.DB.WithContext(ctx).Model(&models.Review{}).
		Select("reviews.*, products.name AS product_name, users.user_name AS user_name").
		Joins("LEFT JOIN products ON products.id = reviews.product_id").
		Joins("LEFT JOIN users ON users.uuid = reviews.user_id")

	// filter columns are qualified because users also has an is_deleted column
	for column, value := range filter.Conditions() {
		q = q.Where("reviews."+column+" = ?", value)
	}
	if sort != nil {
		q = q.Order(sort.OrderClause("reviews.submission_date"))
	}

	var reviews []ReviewWithNames
	if err := q.Scan(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormRepo) ReviewIDsByProduct(ctx context.Context, productID string) ([]int, error) {
	var ids []int
	if err := r.DB.WithContext(ctx).Model(&models.Review{}).
		Where("product_id = ?", productID).
		Pluck("review_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormRepo) ReviewIDsByUser(ctx context.Context, userID string) ([]int, error) {
	var ids []int
	if err := r.DB.WithContext(ctx).Model(&models.Review{}).
		Where("user_id = ?", userID).
		Pluck("review_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := r.DB.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (r *GormRepo) SaveReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := r.DB.WithContext(ctx).Save(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}
