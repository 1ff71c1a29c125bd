package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/reviewmarket/review_dashboard/internal/models"
	"github.com/reviewmarket/review_dashboard/internal/query"
)

func (r *GormRepo) GetUser(ctx context.Context, uuid string) (*models.User, error) {
	user := models.User{}
	if err := r.DB.WithContext(ctx).Where("uuid = ?", uuid).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUsers(ctx context.Context, filter query.UserFilter, sort *query.Sort) ([]models.User, error) {
	q := r.DB.WithContext(ctx).Model(&models.User{})
	if conds := filter.Conditions(); len(conds) > 0 {
		q = q.Where(conds)
	}
	if sort != nil {
		q = q.Order(sort.OrderClause("sign_up_date"))
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *GormRepo) SaveUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.DB.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the row and all reviews referencing it in one
// transaction, so the cascade is atomic regardless of driver support
// for ON DELETE CASCADE.
func (r *GormRepo) DeleteUser(ctx context.Context, uuid string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", uuid).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		res := tx.Where("uuid = ?", uuid).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
