package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/checkout"
	"github.com/hubbra/go-storefront/app/middlewares"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/hubbra/go-storefront/app/utils/format"
	"github.com/hubbra/go-storefront/app/utils/sessions"
	"github.com/unrolled/render"
)

// CheckoutHandler drives the session-held checkout wizard. All routes sit
// behind the auth middleware; submitting never persists an order, it only
// answers with a completion notification.
type CheckoutHandler struct {
	session   sessions.Store
	addresses repositories.AddressRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewCheckoutHandler(session sessions.Store, addresses repositories.AddressRepositoryImpl, rnd *render.Render, validate *validator.Validate) *CheckoutHandler {
	return &CheckoutHandler{session: session, addresses: addresses, render: rnd, validator: validate}
}

type checkoutView struct {
	State     checkout.State   `json:"state"`
	Cart      cartView         `json:"cart"`
	Addresses []models.Address `json:"addresses"`
}

func (h *CheckoutHandler) view(r *http.Request, state checkout.State) (checkoutView, error) {
	addresses, err := h.addresses.FindByUserID(r.Context(), middlewares.UserID(r))
	if err != nil {
		return checkoutView{}, err
	}
	if addresses == nil {
		addresses = []models.Address{}
	}
	return checkoutView{
		State:     state,
		Cart:      viewOf(h.session.GetCart(r)),
		Addresses: addresses,
	}, nil
}

func (h *CheckoutHandler) respondState(w http.ResponseWriter, r *http.Request, state checkout.State) {
	view, err := h.view(r, state)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, view)
}

func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, _ := h.session.GetCheckout(r)
	h.respondState(w, r, state)
}

func (h *CheckoutHandler) Next(w http.ResponseWriter, r *http.Request) {
	state, _ := h.session.GetCheckout(r)
	next, err := state.Next()
	if err != nil {
		respondError(h.render, w, apperr.Validation("%s", err.Error()))
		return
	}
	if err := h.session.SaveCheckout(w, r, next); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.respondState(w, r, next)
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, _ := h.session.GetCheckout(r)
	prev := state.Back()
	if err := h.session.SaveCheckout(w, r, prev); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.respondState(w, r, prev)
}

type SelectAddressForm struct {
	AddressID string `json:"addressId" validate:"required"`
}

// SelectAddress picks one of the caller's saved addresses. An id under
// another user reads as not found, same as the address API.
func (h *CheckoutHandler) SelectAddress(w http.ResponseWriter, r *http.Request) {
	var form SelectAddressForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	address, err := h.addresses.FindByIDAndUser(r.Context(), form.AddressID, middlewares.UserID(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if address == nil {
		respondError(h.render, w, apperr.NotFound("address %s not found", form.AddressID))
		return
	}

	state, _ := h.session.GetCheckout(r)
	state = state.SelectAddress(address.ID)
	if err := h.session.SaveCheckout(w, r, state); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.respondState(w, r, state)
}

type WizardAddressForm struct {
	Label      string `json:"label"`
	Recipient  string `json:"recipient" validate:"required,max=255"`
	Street     string `json:"street" validate:"required,max=255"`
	Number     string `json:"number" validate:"required,max=20"`
	Complement string `json:"complement"`
	District   string `json:"district" validate:"required,max=100"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	Zip        string `json:"zip" validate:"required,max=20"`
}

// CreateAddress saves a new address through the address collaborator and
// auto-selects it in the wizard.
func (h *CheckoutHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	var form WizardAddressForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	address := &models.Address{
		UserID:     middlewares.UserID(r),
		Label:      form.Label,
		Recipient:  form.Recipient,
		Street:     form.Street,
		Number:     form.Number,
		Complement: form.Complement,
		District:   form.District,
		City:       form.City,
		State:      form.State,
		Zip:        form.Zip,
	}
	if err := h.addresses.Create(r.Context(), address); err != nil {
		respondError(h.render, w, err)
		return
	}

	state, _ := h.session.GetCheckout(r)
	state = state.FillAddress(checkout.AddressForm{
		Label:      form.Label,
		Recipient:  form.Recipient,
		Street:     form.Street,
		Number:     form.Number,
		Complement: form.Complement,
		District:   form.District,
		City:       form.City,
		State:      form.State,
		Zip:        form.Zip,
	}).SelectAddress(address.ID)
	if err := h.session.SaveCheckout(w, r, state); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.respondState(w, r, state)
}

type PaymentForm struct {
	Method string `json:"method" validate:"required,oneof=pix card"`
}

func (h *CheckoutHandler) ChoosePayment(w http.ResponseWriter, r *http.Request) {
	var form PaymentForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	state, _ := h.session.GetCheckout(r)
	state, err := state.ChoosePayment(checkout.PaymentMethod(form.Method))
	if err != nil {
		respondError(h.render, w, apperr.Validation("%s", err.Error()))
		return
	}
	if err := h.session.SaveCheckout(w, r, state); err != nil {
		respondError(h.render, w, err)
		return
	}
	h.respondState(w, r, state)
}

// Submit validates the terminal gate and answers with the completion
// notification. Deliberately no order is written here; the flow ends in
// a client-side notification only.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ct := h.session.GetCart(r)
	if ct.IsEmpty() {
		respondError(h.render, w, apperr.Validation("cart is empty"))
		return
	}

	state, _ := h.session.GetCheckout(r)
	if err := state.Submit(); err != nil {
		respondError(h.render, w, apperr.Validation("%s", err.Error()))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{
		"message": "Pedido iniciado",
		"summary": fmt.Sprintf("%s • Total %s", state.PaymentMethod.Summary(), format.BRL(ct.Total())),
	})
}
