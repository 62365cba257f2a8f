package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/middlewares"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/hubbra/go-storefront/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orders    repositories.OrderRepositoryImpl
	service   *services.OrderService
	render    *render.Render
	validator *validator.Validate
}

func NewOrderHandler(orders repositories.OrderRepositoryImpl, service *services.OrderService, rnd *render.Render, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{orders: orders, service: service, render: rnd, validator: validate}
}

type OrderItemForm struct {
	ProductID    string          `json:"productId" validate:"required"`
	ProductName  string          `json:"productName" validate:"required"`
	ProductTeam  string          `json:"productTeam"`
	ProductImage string          `json:"productImage"`
	Size         string          `json:"size" validate:"required"`
	Quantity     int             `json:"quantity" validate:"required,min=1"`
	UnitPrice    decimal.Decimal `json:"unitPrice" validate:"required"`
}

type OrderForm struct {
	UserID          string          `json:"userId" validate:"required"`
	Items           []OrderItemForm `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string          `json:"shippingAddress" validate:"required"`
	ShippingCity    string          `json:"shippingCity" validate:"required"`
	ShippingState   string          `json:"shippingState" validate:"required"`
	ShippingZipCode string          `json:"shippingZipCode" validate:"required"`
}

type OrderUpdateForm struct {
	Status       *string `json:"status"`
	TrackingCode *string `json:"trackingCode"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form OrderForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	input := services.OrderInput{
		UserID:          form.UserID,
		ShippingAddress: form.ShippingAddress,
		ShippingCity:    form.ShippingCity,
		ShippingState:   form.ShippingState,
		ShippingZipCode: form.ShippingZipCode,
	}
	for _, item := range form.Items {
		if item.UnitPrice.IsNegative() {
			respondError(h.render, w, apperr.Validation("unit price cannot be negative"))
			return
		}
		input.Items = append(input.Items, services.OrderItemInput{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductTeam:  item.ProductTeam,
			ProductImage: item.ProductImage,
			Size:         item.Size,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	order, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		orders []models.Order
		err    error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			respondError(h.render, w, apperr.Validation("invalid order status %q", status))
			return
		}
		orders, err = h.orders.FindByStatus(r.Context(), status)
	} else {
		orders, err = h.orders.FindAll(r.Context())
	}
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	_ = h.render.JSON(w, http.StatusOK, orders)
}

// ListByUser returns a user's order history. Clients may only read their
// own history; admins may read anyone's.
func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if middlewares.UserID(r) != userID && middlewares.Role(r) != models.RoleAdmin {
		respondError(h.render, w, apperr.Forbidden("cannot read another user's orders"))
		return
	}
	orders, err := h.orders.FindByUserID(r.Context(), userID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	_ = h.render.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	order, err := h.orders.FindByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if order == nil {
		respondError(h.render, w, apperr.NotFound("order %s not found", id))
		return
	}
	if order.UserID != middlewares.UserID(r) && middlewares.Role(r) != models.RoleAdmin {
		respondError(h.render, w, apperr.Forbidden("cannot read another user's order"))
		return
	}
	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var form OrderUpdateForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	order, err := h.service.UpdateFulfillment(r.Context(), id, form.Status, form.TrackingCode)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	order, err := h.orders.FindByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if order == nil {
		respondError(h.render, w, apperr.NotFound("order %s not found", id))
		return
	}
	if err := h.orders.Delete(r.Context(), id); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "order deleted"})
}
