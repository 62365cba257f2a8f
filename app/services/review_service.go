package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/hubbra/go-storefront/app/utils/calc"
)

type ReviewService struct {
	productRepo repositories.ProductRepositoryImpl
	reviewRepo  repositories.ReviewRepositoryImpl
}

func NewReviewService(productRepo repositories.ProductRepositoryImpl, reviewRepo repositories.ReviewRepositoryImpl) *ReviewService {
	return &ReviewService{productRepo: productRepo, reviewRepo: reviewRepo}
}

type ReviewInput struct {
	Author  string
	Rating  int
	Comment string
}

// AddReview persists the review stamped with the current calendar date,
// then recomputes the product's mean rating over all reviews including
// the new one. No lock is taken around the recomputation; concurrent
// submissions for the same product race last-write-wins.
func (s *ReviewService) AddReview(ctx context.Context, productID string, in ReviewInput) (*models.Review, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product %s not found", productID)
	}

	ratings, err := s.reviewRepo.RatingsByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}
	ratings = append(ratings, in.Rating)

	review := &models.Review{
		ID:        uuid.New().String(),
		Author:    in.Author,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Date:      time.Now().Format("2006-01-02"),
		ProductID: productID,
	}
	if err := s.reviewRepo.CreateWithRating(ctx, review, calc.AverageRating(ratings)); err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}
	return review, nil
}

// ListReviews returns the product's reviews newest-first.
func (s *ReviewService) ListReviews(ctx context.Context, productID string) ([]models.Review, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product %s not found", productID)
	}
	return s.reviewRepo.FindByProductID(ctx, productID)
}
