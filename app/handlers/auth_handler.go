package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/helpers"
	"github.com/hubbra/go-storefront/app/middlewares"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/hubbra/go-storefront/app/services"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	users     repositories.UserRepositoryImpl
	tokens    *services.TokenService
	render    *render.Render
	validator *validator.Validate
}

func NewAuthHandler(users repositories.UserRepositoryImpl, tokens *services.TokenService, rnd *render.Render, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, render: rnd, validator: validate}
}

type RegisterForm struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form RegisterForm
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

	hashed := helpers.HashPassword(form.Password)
	if hashed == "" {
		respondError(h.render, w, apperr.Validation("could not hash password"))
		return
	}

	user := &models.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: hashed,
		Phone:    form.Phone,
		Role:     models.RoleClient,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		respondError(h.render, w, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(h.render, w, err)
		return
	}
	if err := validateStruct(h.validator, form); err != nil {
		respondError(h.render, w, err)
		return
	}

	user, err := h.users.FindByEmail(r.Context(), form.Email)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(form.Password)) {
		respondError(h.render, w, apperr.Unauthorized("invalid email or password"))
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

// Me returns the profile behind the bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByID(r.Context(), middlewares.UserID(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if user == nil {
		respondError(h.render, w, apperr.Unauthorized("account no longer exists"))
		return
	}
	_ = h.render.JSON(w, http.StatusOK, user)
}
