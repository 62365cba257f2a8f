package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/hubbra/go-storefront/app/models"
	"gorm.io/gorm"
)

// Address lookups always carry the owner in the predicate itself, so an
// address under another user is indistinguishable from a missing one.
type AddressRepositoryImpl interface {
	Create(ctx context.Context, address *models.Address) error
	FindByIDAndUser(ctx context.Context, id, userID string) (*models.Address, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id, userID string) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepositoryImpl {
	return &addressRepository{db}
}

func (a *addressRepository) Create(ctx context.Context, address *models.Address) error {
	if err := a.db.WithContext(ctx).Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

func (a *addressRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*models.Address, error) {
	var address models.Address
	err := a.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find address by ID: %w", err)
	}
	return &address, nil
}

func (a *addressRepository) FindByUserID(ctx context.Context, userID string) ([]models.Address, error) {
	var addresses []models.Address
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses for user %s: %w", userID, err)
	}
	return addresses, nil
}

func (a *addressRepository) Update(ctx context.Context, address *models.Address) error {
	if err := a.db.WithContext(ctx).Save(address).Error; err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	return nil
}

func (a *addressRepository) Delete(ctx context.Context, id, userID string) error {
	err := a.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Address{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}
