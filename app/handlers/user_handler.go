package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/helpers"
	"github.com/hubbra/go-storefront/app/middlewares"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/unrolled/render"
)

type UserHandler struct {
	users     repositories.UserRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewUserHandler(users repositories.UserRepositoryImpl, rnd *render.Render, validate *validator.Validate) *UserHandler {
	return &UserHandler{users: users, render: rnd, validator: validate}
}

type UserForm struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"omitempty,oneof=admin client"`
}

type UserUpdateForm struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin client"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetAll(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	_ = h.render.JSON(w, http.StatusOK, users)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form UserForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	existing, err := h.users.FindByEmail(r.Context(), form.Email)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if existing != nil {
		respondError(h.render, w, apperr.Conflict("email %s is already registered", form.Email))
		return
	}

	role := form.Role
	if role == "" {
		role = models.RoleClient
	}
	user := &models.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: helpers.HashPassword(form.Password),
		Phone:    form.Phone,
		Role:     role,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, user)
}

// Get allows users to read their own profile; admins may read anyone's.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if middlewares.UserID(r) != id && middlewares.Role(r) != models.RoleAdmin {
		respondError(h.render, w, apperr.Forbidden("cannot read another user's profile"))
		return
	}
	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if user == nil {
		respondError(h.render, w, apperr.NotFound("user %s not found", id))
		return
	}
	_ = h.render.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	isAdmin := middlewares.Role(r) == models.RoleAdmin
	if middlewares.UserID(r) != id && !isAdmin {
		respondError(h.render, w, apperr.Forbidden("cannot update another user's profile"))
		return
	}

	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if user == nil {
		respondError(h.render, w, apperr.NotFound("user %s not found", id))
		return
	}

	var form UserUpdateForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	if form.Email != nil && *form.Email != user.Email {
		existing, err := h.users.FindByEmail(r.Context(), *form.Email)
		if err != nil {
			respondError(h.render, w, err)
			return
		}
		if existing != nil {
			respondError(h.render, w, apperr.Conflict("email %s is already registered", *form.Email))
			return
		}
		user.Email = *form.Email
	}
	if form.Name != nil {
		user.Name = *form.Name
	}
	if form.Password != nil {
		user.Password = helpers.HashPassword(*form.Password)
	}
	if form.Phone != nil {
		user.Phone = *form.Phone
	}
	// Only admins may change roles.
	if form.Role != nil {
		if !isAdmin {
			respondError(h.render, w, apperr.Forbidden("cannot change role"))
			return
		}
		user.Role = *form.Role
	}

	if err := h.users.Update(r.Context(), user); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if user == nil {
		respondError(h.render, w, apperr.NotFound("user %s not found", id))
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
