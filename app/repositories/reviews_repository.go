package repositories

import (
	"context"
	"fmt"

	"github.com/hubbra/go-storefront/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReviewRepositoryImpl interface {
	FindByProductID(ctx context.Context, productID string) ([]models.Review, error)
	RatingsByProductID(ctx context.Context, productID string) ([]int, error)
	CreateWithRating(ctx context.Context, review *models.Review, rating decimal.Decimal) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryImpl {
	return &reviewRepository{db}
}

func (r *reviewRepository) FindByProductID(ctx context.Context, productID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

func (r *reviewRepository) RatingsByProductID(ctx context.Context, productID string) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("product_id = ?", productID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings for product %s: %w", productID, err)
	}
	return ratings, nil
}

// CreateWithRating inserts the review and writes the recomputed product
// rating in one transaction, so a failed rating update never strands a
// half-applied review. It takes no row lock: two concurrent reviews for
// the same product can still race on the recomputation (last write wins).
func (r *reviewRepository) CreateWithRating(ctx context.Context, review *models.Review, rating decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		err := tx.Model(&models.Product{}).
			Where("id = ?", review.ProductID).
			Update("rating", rating).Error
		if err != nil {
			return fmt.Errorf("failed to update product rating: %w", err)
		}
		return nil
	})
}
