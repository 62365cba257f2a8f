package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/middlewares"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/unrolled/render"
)

type AddressHandler struct {
	repo      repositories.AddressRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewAddressHandler(repo repositories.AddressRepositoryImpl, rnd *render.Render, validate *validator.Validate) *AddressHandler {
	return &AddressHandler{repo: repo, render: rnd, validator: validate}
}

type AddressForm struct {
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

type AddressUpdateForm struct {
	Label      *string `json:"label"`
	Recipient  *string `json:"recipient" validate:"omitempty,max=255"`
	Street     *string `json:"street" validate:"omitempty,max=255"`
	Number     *string `json:"number" validate:"omitempty,max=20"`
	Complement *string `json:"complement"`
	District   *string `json:"district" validate:"omitempty,max=100"`
	City       *string `json:"city" validate:"omitempty,max=100"`
	State      *string `json:"state" validate:"omitempty,max=100"`
	Zip        *string `json:"zip" validate:"omitempty,max=20"`
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form AddressForm
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
	if err := h.repo.Create(r.Context(), address); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, address)
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.repo.FindByUserID(r.Context(), middlewares.UserID(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if addresses == nil {
		addresses = []models.Address{}
	}
	_ = h.render.JSON(w, http.StatusOK, addresses)
}

// Get looks an address up by id and owner together; an address under a
// different user is reported as not found, not forbidden.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	address, err := h.repo.FindByIDAndUser(r.Context(), id, middlewares.UserID(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if address == nil {
		respondError(h.render, w, apperr.NotFound("address %s not found", id))
		return
	}
	_ = h.render.JSON(w, http.StatusOK, address)
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	address, err := h.repo.FindByIDAndUser(r.Context(), id, middlewares.UserID(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if address == nil {
		respondError(h.render, w, apperr.NotFound("address %s not found", id))
		return
	}

	var form AddressUpdateForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	if form.Label != nil {
		address.Label = *form.Label
	}
	if form.Recipient != nil {
		address.Recipient = *form.Recipient
	}
	if form.Street != nil {
		address.Street = *form.Street
	}
	if form.Number != nil {
		address.Number = *form.Number
	}
	if form.Complement != nil {
		address.Complement = *form.Complement
	}
	if form.District != nil {
		address.District = *form.District
	}
	if form.City != nil {
		address.City = *form.City
	}
	if form.State != nil {
		address.State = *form.State
	}
	if form.Zip != nil {
		address.Zip = *form.Zip
	}

	if err := h.repo.Update(r.Context(), address); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, address)
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	address, err := h.repo.FindByIDAndUser(r.Context(), id, middlewares.UserID(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if address == nil {
		respondError(h.render, w, apperr.NotFound("address %s not found", id))
		return
	}
	if err := h.repo.Delete(r.Context(), id, middlewares.UserID(r)); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "address deleted"})
}
