package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/reviewmarket/review_dashboard/internal/models"
	"github.com/reviewmarket/review_dashboard/internal/query"
	"github.com/reviewmarket/review_dashboard/internal/repo"
)

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func reviewFilterAll() query.ReviewFilter {
	return query.ReviewFilter{}
}

func InitTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Review{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func newTestService(t *testing.T) *AdminService {
	t.Helper()
	return NewAdminService(repo.NewGormRepo(InitTestDB(t)), nil, nil)
}

func createTestUser(t *testing.T, svc *AdminService, name string, signUp time.Time) models.User {
	t.Helper()

	user := models.User{
		UUID:       uuid.NewString(),
		UserName:   name,
		Mail:       name + "@example.com",
		Password:   "hash",
		SignUpDate: signUp,
	}
	require.NoError(t, svc.Repo.DB.Create(&user).Error)
	return user
}

func createTestProduct(t *testing.T, svc *AdminService, name string, price float64) models.Product {
	t.Helper()

	prod := models.Product{
		ID:    uuid.NewString(),
		Name:  name,
		Image: "https://img.example.com/" + name + ".png",
		Price: price,
	}
	require.NoError(t, svc.Repo.DB.Create(&prod).Error)
	return prod
}

func createTestReview(t *testing.T, svc *AdminService, productID, userID string, rating int, submitted time.Time) models.Review {
	t.Helper()

	review := models.Review{
		ProductID:      productID,
		UserID:         userID,
		Content:        "test content",
		SubmissionDate: submitted,
		Rating:         rating,
	}
	require.NoError(t, svc.Repo.DB.Create(&review).Error)
	return review
}
