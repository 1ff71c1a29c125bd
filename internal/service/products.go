package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reviewmarket/review_dashboard/internal/events"
	"github.com/reviewmarket/review_dashboard/internal/logging"
	"github.com/reviewmarket/review_dashboard/internal/models"
)

// UpdateProductInput carries the optional fields of updateProduct.
// Nil means the field was not present in the request.
type UpdateProductInput struct {
	Name      *string
	Image     *string
	Price     *float64
	IsSpecial *bool
	Discount  *int
}

func (s *AdminService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *AdminService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *AdminService) CreateProduct(ctx context.Context, name, image string, price float64) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "admin.create_product")

	if price <= 0.9 {
		l.Warn("product_create_error", "reason", "price too low", "price", price)
		return nil, fmt.Errorf("price must be greater than 0.9: %w", ErrValidation)
	}

	prod := models.Product{
		ID:    uuid.NewString(),
		Name:  name,
		Image: image,
		Price: price,
	}
	created, err := s.Repo.CreateProduct(ctx, &prod)
	if err != nil {
		l.Error("product_create_error", "reason", "cannot add product to db", "error", err)
		return nil, err
	}

	s.publish(ctx, events.TopicProductEvents, created.ID, map[string]any{
		"type":      "product_created",
		"productID": created.ID,
		"name":      created.Name,
	})

	l.Info("product_create_success", "product_id", created.ID)
	return created, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "admin.update_product", "product_id", id)

	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("product_update_error", "reason", "product not found")
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	requestSpecial := in.IsSpecial != nil && *in.IsSpecial
	if requestSpecial && in.Discount == nil {
		l.Warn("product_update_error", "reason", "discount missing for special product")
		return nil, fmt.Errorf("discount must be provided for special products: %w", ErrValidation)
	}
	if !requestSpecial && in.Discount != nil {
		l.Warn("product_update_error", "reason", "discount set for non-special product")
		return nil, fmt.Errorf("discount cannot be set for non-special products: %w", ErrValidation)
	}
	if in.Discount != nil && (*in.Discount < 0 || *in.Discount > 100) {
		l.Warn("product_update_error", "reason", "discount out of range", "discount", *in.Discount)
		return nil, fmt.Errorf("discount must be between 0 and 100: %w", ErrValidation)
	}
	if in.Price != nil && *in.Price <= 0.9 {
		l.Warn("product_update_error", "reason", "price too low", "price", *in.Price)
		return nil, fmt.Errorf("price must be greater than 0.9: %w", ErrValidation)
	}

	if in.Name != nil {
		prod.Name = *in.Name
	}
	if in.Image != nil {
		prod.Image = *in.Image
	}
	if in.Price != nil {
		prod.Price = *in.Price
	}
	if in.IsSpecial != nil {
		prod.IsSpecial = *in.IsSpecial
	}

	// discount follows the resulting isSpecial: kept in sync when set in
	// this request, carried over when the product stays special, cleared
	// the moment the product stops being special
	if prod.IsSpecial {
		if in.Discount != nil {
			prod.Discount = in.Discount
		}
	} else {
		prod.Discount = nil
	}

	saved, err := s.Repo.SaveProduct(ctx, prod)
	if err != nil {
		l.Error("product_update_error", "reason", "cannot save product", "error", err)
		return nil, err
	}

	s.publish(ctx, events.TopicProductEvents, saved.ID, map[string]any{
		"type":      "product_updated",
		"productID": saved.ID,
		"name":      saved.Name,
	})

	l.Info("product_update_success")
	return saved, nil
}

// DeleteProduct hard-deletes the product and cascades to its reviews.
// The returned product is the last-known state of the removed row.
func (s *AdminService) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "admin.delete_product", "product_id", id)

	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("product_delete_error", "reason", "product not found")
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	reviewIDs, err := s.Repo.ReviewIDsByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		l.Error("product_delete_error", "reason", "cannot delete product", "error", err)
		return nil, err
	}

	s.dropReviewDocs(ctx, reviewIDs)
	s.publish(ctx, events.TopicProductEvents, id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("product_delete_success", "cascaded_reviews", len(reviewIDs))
	return prod, nil
}
