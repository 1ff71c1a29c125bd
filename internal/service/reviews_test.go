package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewmarket/review_dashboard/internal/query"
)

func TestUpdateReviewContent_LengthBounds(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "reviewer", testTime())
	prod := createTestProduct(t, svc, "organizer", 24.99)
	review := createTestReview(t, svc, prod.ID, user.UUID, 4, testTime())

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "empty", content: "", wantErr: true},
		{name: "101 chars", content: strings.Repeat("a", 101), wantErr: true},
		{name: "single char", content: "a", wantErr: false},
		{name: "100 chars", content: strings.Repeat("b", 100), wantErr: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			updated, err := svc.UpdateReviewContent(ctx, review.ReviewID, tt.content)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, updated.Content)
		})
	}
}

func TestUpdateReviewContent_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.UpdateReviewContent(context.Background(), 12345, "fine content")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReview_SoftDelete(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "reviewer", testTime())
	prod := createTestProduct(t, svc, "pourover", 42.5)
	review := createTestReview(t, svc, prod.ID, user.UUID, 5, testTime())

	deleted, err := svc.DeleteReview(ctx, review.ReviewID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
	assert.Equal(t, review.ReviewID, deleted.ReviewID)

	// the row stays queryable through the isDeleted filter
	isDeleted := true
	rows, err := svc.GetAllReviews(ctx, query.ReviewFilter{IsDeleted: &isDeleted}, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, review.ReviewID, rows[0].ReviewID)
	assert.True(t, rows[0].IsDeleted)
}

func TestDeleteReview_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.DeleteReview(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlagAndUnflagReview(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "reviewer", testTime())
	prod := createTestProduct(t, svc, "tote", 15)
	review := createTestReview(t, svc, prod.ID, user.UUID, 1, testTime())

	flagged, err := svc.FlagReview(ctx, review.ReviewID)
	require.NoError(t, err)
	assert.True(t, flagged.IsFlagged)

	isFlagged := true
	rows, err := svc.GetAllReviews(ctx, query.ReviewFilter{IsFlagged: &isFlagged}, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, review.ReviewID, rows[0].ReviewID)

	unflagged, err := svc.UnflagReview(ctx, review.ReviewID)
	require.NoError(t, err)
	assert.False(t, unflagged.IsFlagged)
}

func TestGetAllReviews_EnrichmentAndSort(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "carol", testTime())
	prod := createTestProduct(t, svc, "organizer", 24.99)
	early := createTestReview(t, svc, prod.ID, user.UUID, 2, testTime())
	late := createTestReview(t, svc, prod.ID, user.UUID, 5, testTime().Add(time.Hour))

	rows, err := svc.GetAllReviews(ctx, query.ReviewFilter{}, &query.Sort{Direction: query.Desc})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, late.ReviewID, rows[0].ReviewID)
	assert.Equal(t, early.ReviewID, rows[1].ReviewID)

	require.NotNil(t, rows[0].ProductName)
	assert.Equal(t, "organizer", *rows[0].ProductName)
	require.NotNil(t, rows[0].UserName)
	assert.Equal(t, "carol", *rows[0].UserName)
}

func TestGetAllReviews_RatingFilter(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "bob", testTime())
	prod := createTestProduct(t, svc, "tote", 15)
	createTestReview(t, svc, prod.ID, user.UUID, 5, testTime())
	zero := createTestReview(t, svc, prod.ID, user.UUID, 0, testTime())

	rating := 0
	rows, err := svc.GetAllReviews(ctx, query.ReviewFilter{Rating: &rating}, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, zero.ReviewID, rows[0].ReviewID)
}

func TestSearchReviews_NotConfigured(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.SearchReviews(context.Background(), "tidy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
