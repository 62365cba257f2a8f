package services

import (
	"context"
	"testing"
	"time"

	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[string]*models.Product
}

func (f *fakeProductRepo) Search(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error { return nil }
func (f *fakeProductRepo) Update(ctx context.Context, product *models.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id string) error               { return nil }
func (f *fakeProductRepo) Count(ctx context.Context) (int64, error)                  { return 0, nil }

type fakeReviewRepo struct {
	reviews     map[string][]models.Review
	savedRating decimal.Decimal
}

func (f *fakeReviewRepo) FindByProductID(ctx context.Context, productID string) ([]models.Review, error) {
	return f.reviews[productID], nil
}

func (f *fakeReviewRepo) RatingsByProductID(ctx context.Context, productID string) ([]int, error) {
	var ratings []int
	for _, r := range f.reviews[productID] {
		ratings = append(ratings, r.Rating)
	}
	return ratings, nil
}

func (f *fakeReviewRepo) CreateWithRating(ctx context.Context, review *models.Review, rating decimal.Decimal) error {
	f.reviews[review.ProductID] = append(f.reviews[review.ProductID], *review)
	f.savedRating = rating
	return nil
}

func newReviewFixture() (*ReviewService, *fakeReviewRepo) {
	products := &fakeProductRepo{products: map[string]*models.Product{
		"p1": {ID: "p1", Name: "Camisa Brasil Home 2024"},
	}}
	reviews := &fakeReviewRepo{reviews: map[string][]models.Review{
		"p1": {
			{ID: "r1", ProductID: "p1", Rating: 5},
			{ID: "r2", ProductID: "p1", Rating: 4},
		},
	}}
	return NewReviewService(products, reviews), reviews
}

func TestAddReviewRecomputesRating(t *testing.T) {
	svc, reviews := newReviewFixture()

	review, err := svc.AddReview(context.Background(), "p1", ReviewInput{
		Author:  "Maria",
		Rating:  4,
		Comment: "Ótima qualidade",
	})
	require.NoError(t, err)

	// (5 + 4 + 4) / 3 rounded to one decimal place.
	assert.Equal(t, "4.3", reviews.savedRating.String())
	assert.Equal(t, "Maria", review.Author)
	assert.Equal(t, 4, review.Rating)
	assert.NotEmpty(t, review.ID)
}

func TestAddReviewStampsCurrentDate(t *testing.T) {
	svc, _ := newReviewFixture()

	review, err := svc.AddReview(context.Background(), "p1", ReviewInput{Author: "Ana", Rating: 5, Comment: "Perfeita"})
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), review.Date)
}

func TestAddReviewFirstReview(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*models.Product{
		"p2": {ID: "p2"},
	}}
	reviews := &fakeReviewRepo{reviews: map[string][]models.Review{}}
	svc := NewReviewService(products, reviews)

	_, err := svc.AddReview(context.Background(), "p2", ReviewInput{Author: "Pedro", Rating: 3, Comment: "Razoável"})
	require.NoError(t, err)

	assert.Equal(t, "3", reviews.savedRating.String())
}

func TestAddReviewUnknownProduct(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.AddReview(context.Background(), "missing", ReviewInput{Author: "X", Rating: 1, Comment: "?"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListReviewsUnknownProduct(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.ListReviews(context.Background(), "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListReviews(t *testing.T) {
	svc, _ := newReviewFixture()

	got, err := svc.ListReviews(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
