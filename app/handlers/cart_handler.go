package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/cart"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/hubbra/go-storefront/app/utils/sessions"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

// CartHandler mutates the session-held cart. Prices, names and images on
// a line come from the catalog, never from the client.
type CartHandler struct {
	session   sessions.Store
	products  repositories.ProductRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewCartHandler(session sessions.Store, products repositories.ProductRepositoryImpl, rnd *render.Render, validate *validator.Validate) *CartHandler {
	return &CartHandler{session: session, products: products, render: rnd, validator: validate}
}

type cartView struct {
	Lines      []cart.Line     `json:"lines"`
	TotalItems int             `json:"totalItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
}

func viewOf(c cart.Cart) cartView {
	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartView{
		Lines:      lines,
		TotalItems: c.TotalItems(),
		Subtotal:   c.Subtotal(),
		Shipping:   c.Shipping(),
		Total:      c.Total(),
	}
}

// Get returns the cart and hands out the CSRF token required by the
// mutating storefront endpoints.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-CSRF-Token", csrf.Token(r))
	_ = h.render.JSON(w, http.StatusOK, viewOf(h.session.GetCart(r)))
}

type AddItemForm struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=0"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var form AddItemForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	product, err := h.products.GetByID(r.Context(), form.ProductID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if product == nil {
		respondError(h.render, w, apperr.NotFound("product %s not found", form.ProductID))
		return
	}
	if !product.HasSize(form.Size) {
		respondError(h.render, w, apperr.Validation("size %q is not offered for this product", form.Size))
		return
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	ct := h.session.GetCart(r).Add(cart.Line{
		ProductID: product.ID,
		Name:      product.Name,
		Team:      product.Team,
		Image:     image,
		Size:      form.Size,
		UnitPrice: product.Price,
		Quantity:  form.Quantity,
	})
	if err := h.session.SaveCart(w, r, ct); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, viewOf(ct))
}

type UpdateItemForm struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var form UpdateItemForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	ct := h.session.GetCart(r).UpdateQuantity(form.ProductID, form.Size, form.Quantity)
	if err := h.session.SaveCart(w, r, ct); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, viewOf(ct))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("productId")
	size := r.URL.Query().Get("size")
	if productID == "" || size == "" {
		respondError(h.render, w, apperr.Validation("productId and size query parameters are required"))
		return
	}

	ct := h.session.GetCart(r).Remove(productID, size)
	if err := h.session.SaveCart(w, r, ct); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, viewOf(ct))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.session.SaveCart(w, r, cart.Cart{}); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, viewOf(cart.Cart{}))
}
