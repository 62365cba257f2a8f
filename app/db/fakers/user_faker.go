package fakers

import (
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/hubbra/go-storefront/app/helpers"
	"github.com/hubbra/go-storefront/app/models"
)

func UserFaker() *models.User {
	return &models.User{
		ID:       uuid.New().String(),
		Name:     faker.Name(),
		Email:    faker.Email(),
		Password: helpers.HashPassword("password"),
		Phone:    faker.Phonenumber(),
		Role:     models.RoleClient,
	}
}
