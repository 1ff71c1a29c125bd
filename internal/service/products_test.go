package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_RejectsLowPrice(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		price float64
	}{
		{name: "below threshold", price: 0.5},
		{name: "at threshold", price: 0.9},
		{name: "zero", price: 0},
		{name: "negative", price: -3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			prod, err := svc.CreateProduct(ctx, "Widget", "http://x/img.png", tt.price)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, prod)
		})
	}

	// nothing may have been persisted by the failed creates
	products, err := svc.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreateProduct_Defaults(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	prod, err := svc.CreateProduct(ctx, "Widget", "http://x/img.png", 1.5)
	require.NoError(t, err)
	require.NotEmpty(t, prod.ID)
	assert.Equal(t, "Widget", prod.Name)
	assert.Equal(t, "http://x/img.png", prod.Image)
	assert.Equal(t, 1.5, prod.Price)
	assert.False(t, prod.IsSpecial)
	assert.Nil(t, prod.Discount)

	stored, err := svc.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, prod.ID, stored.ID)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.UpdateProduct(context.Background(), uuid.NewString(), UpdateProductInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProduct_SpecialDiscountPairing(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(i int) *int { return &i }

	t.Run("special without discount fails", func(t *testing.T) {
		prod := createTestProduct(t, svc, "a", 2)
		_, err := svc.UpdateProduct(ctx, prod.ID, UpdateProductInput{IsSpecial: boolPtr(true)})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("non-special with discount fails", func(t *testing.T) {
		prod := createTestProduct(t, svc, "b", 2)
		_, err := svc.UpdateProduct(ctx, prod.ID, UpdateProductInput{IsSpecial: boolPtr(false), Discount: intPtr(10)})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unset special with discount fails", func(t *testing.T) {
		prod := createTestProduct(t, svc, "c", 2)
		_, err := svc.UpdateProduct(ctx, prod.ID, UpdateProductInput{Discount: intPtr(10)})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("discount out of range fails", func(t *testing.T) {
		prod := createTestProduct(t, svc, "d", 2)
		_, err := svc.UpdateProduct(ctx, prod.ID, UpdateProductInput{IsSpecial: boolPtr(true), Discount: intPtr(101)})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("special with discount persists both", func(t *testing.T) {
		prod := createTestProduct(t, svc, "e", 2)
		updated, err := svc.UpdateProduct(ctx, prod.ID, UpdateProductInput{IsSpecial: boolPtr(true), Discount: intPtr(20)})
		require.NoError(t, err)
		assert.True(t, updated.IsSpecial)
		require.NotNil(t, updated.Discount)
		assert.Equal(t, 20, *updated.Discount)

		// flipping isSpecial off clears the discount
		updated, err = svc.UpdateProduct(ctx, prod.ID, UpdateProductInput{IsSpecial: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, updated.IsSpecial)
		assert.Nil(t, updated.Discount)
	})
}

func TestUpdateProduct_OmittedFieldsKeepStoredValues(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(i int) *int { return &i }
	strPtr := func(s string) *string { return &s }

	prod := createTestProduct(t, svc, "organizer", 24.99)
	_, err := svc.UpdateProduct(ctx, prod.ID, UpdateProductInput{IsSpecial: boolPtr(true), Discount: intPtr(30)})
	require.NoError(t, err)

	// name-only update on a special product keeps discount and price
	updated, err := svc.UpdateProduct(ctx, prod.ID, UpdateProductInput{Name: strPtr("walnut organizer")})
	require.NoError(t, err)
	assert.Equal(t, "walnut organizer", updated.Name)
	assert.Equal(t, 24.99, updated.Price)
	assert.True(t, updated.IsSpecial)
	require.NotNil(t, updated.Discount)
	assert.Equal(t, 30, *updated.Discount)
}

func TestUpdateProduct_RejectsLowPrice(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	floatPtr := func(f float64) *float64 { return &f }

	prod := createTestProduct(t, svc, "tote", 15)
	_, err := svc.UpdateProduct(ctx, prod.ID, UpdateProductInput{Price: floatPtr(0.2)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	stored, err := svc.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(15), stored.Price)
}

func TestDeleteProduct_CascadesReviews(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "reviewer", testTime())
	prod := createTestProduct(t, svc, "pourover", 42.5)
	other := createTestProduct(t, svc, "tote", 15)
	createTestReview(t, svc, prod.ID, user.UUID, 5, testTime())
	createTestReview(t, svc, prod.ID, user.UUID, 3, testTime())
	kept := createTestReview(t, svc, other.ID, user.UUID, 4, testTime())

	snapshot, err := svc.DeleteProduct(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, prod.ID, snapshot.ID)

	_, err = svc.GetProduct(ctx, prod.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	reviews, err := svc.GetAllReviews(ctx, reviewFilterAll(), nil)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, kept.ReviewID, reviews[0].ReviewID)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.DeleteProduct(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
