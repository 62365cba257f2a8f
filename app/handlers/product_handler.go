package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/hubbra/go-storefront/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	repo      repositories.ProductRepositoryImpl
	reviews   *services.ReviewService
	render    *render.Render
	validator *validator.Validate
}

func NewProductHandler(repo repositories.ProductRepositoryImpl, reviews *services.ReviewService, rnd *render.Render, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{repo: repo, reviews: reviews, render: rnd, validator: validate}
}

type ProductForm struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Team        string          `json:"team" validate:"required,max=255"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Images      []string        `json:"images"`
	Description string          `json:"description" validate:"required"`
	IsNew       bool            `json:"isNew"`
	Category    string          `json:"category" validate:"required,max=100"`
	Sizes       []string        `json:"sizes" validate:"required,min=1"`
	Stock       int             `json:"stock" validate:"min=0"`
}

type ProductUpdateForm struct {
	Name        *string          `json:"name" validate:"omitempty,max=255"`
	Team        *string          `json:"team" validate:"omitempty,max=255"`
	Price       *decimal.Decimal `json:"price"`
	Images      []string         `json:"images"`
	Description *string          `json:"description"`
	IsNew       *bool            `json:"isNew"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
	Sizes       []string         `json:"sizes"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
}

// List serves the catalog listing. Filters and sort come from the query
// string; unparsable values degrade to "filter not applied".
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ParseProductFilter(r.URL.Query())
	products, err := h.repo.Search(r.Context(), filter)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if product == nil {
		respondError(h.render, w, apperr.NotFound("product %s not found", id))
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	images, err := resolveImages(form.Images, nil)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	product := &models.Product{
		Name:        form.Name,
		Team:        form.Team,
		Price:       form.Price,
		Images:      images,
		Description: form.Description,
		IsNew:       form.IsNew,
		Category:    form.Category,
		Sizes:       models.StringList(form.Sizes),
		Rating:      decimal.Zero,
		Stock:       form.Stock,
	}
	if err := h.repo.Create(r.Context(), product); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if product == nil {
		respondError(h.render, w, apperr.NotFound("product %s not found", id))
		return
	}

	var form ProductUpdateForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	images, err := resolveImages(form.Images, product.Images)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	product.Images = images

	if form.Name != nil {
		product.Name = *form.Name
	}
	if form.Team != nil {
		product.Team = *form.Team
	}
	if form.Price != nil {
		product.Price = *form.Price
	}
	if form.Description != nil {
		product.Description = *form.Description
	}
	if form.IsNew != nil {
		product.IsNew = *form.IsNew
	}
	if form.Category != nil {
		product.Category = *form.Category
	}
	if len(form.Sizes) > 0 {
		product.Sizes = models.StringList(form.Sizes)
	}
	if form.Stock != nil {
		product.Stock = *form.Stock
	}

	if err := h.repo.Update(r.Context(), product); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if product == nil {
		respondError(h.render, w, apperr.NotFound("product %s not found", id))
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

type ReviewForm struct {
	Author  string `json:"author" validate:"required,max=255"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

func (h *ProductHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var form ReviewForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	review, err := h.reviews.AddReview(r.Context(), mux.Vars(r)["id"], services.ReviewInput{
		Author:  form.Author,
		Rating:  form.Rating,
		Comment: form.Comment,
	})
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, review)
}

func (h *ProductHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListReviews(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	_ = h.render.JSON(w, http.StatusOK, reviews)
}

// resolveImages enforces the catalog invariant that a product always has
// at least one image: submitted images win, otherwise the product's
// current images survive, otherwise the write is rejected.
func resolveImages(submitted []string, current models.StringList) (models.StringList, error) {
	if len(submitted) > 0 {
		return models.StringList(submitted), nil
	}
	if len(current) > 0 {
		return current, nil
	}
	return nil, apperr.Validation("at least one image is required")
}
