package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/hubbra/go-storefront/app/utils/calc"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

// StorefrontHandler serves the browsing surface: the same catalog as the
// admin API, decorated with the display-only promotional pricing.
type StorefrontHandler struct {
	repo   repositories.ProductRepositoryImpl
	render *render.Render
}

func NewStorefrontHandler(repo repositories.ProductRepositoryImpl, rnd *render.Render) *StorefrontHandler {
	return &StorefrontHandler{repo: repo, render: rnd}
}

type storefrontProduct struct {
	models.Product
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	DiscountPercent int             `json:"discountPercent"`
}

func decorate(p models.Product) storefrontProduct {
	original, discount := calc.PromoPricing(p.ID, p.Price)
	return storefrontProduct{Product: p, OriginalPrice: original, DiscountPercent: discount}
}

func (h *StorefrontHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ParseProductFilter(r.URL.Query())
	products, err := h.repo.Search(r.Context(), filter)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	decorated := make([]storefrontProduct, 0, len(products))
	for _, p := range products {
		decorated = append(decorated, decorate(p))
	}
	_ = h.render.JSON(w, http.StatusOK, decorated)
}

func (h *StorefrontHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	_ = h.render.JSON(w, http.StatusOK, decorate(*product))
}
