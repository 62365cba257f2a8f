package migrations

import (
	"github.com/hubbra/go-storefront/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Address{}, &models.Product{}, &models.Review{}, &models.Order{}, &models.OrderItem{})
}
