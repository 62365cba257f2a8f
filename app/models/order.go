package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known fulfillment states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order keeps the shipping address flattened on the row. It is not a
// foreign key to a stored Address: the order must survive the address
// being edited or deleted later.
type Order struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID          string          `gorm:"size:36;not null;index" json:"userId"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	ShippingAddress string          `gorm:"size:255;not null" json:"shippingAddress"`
	ShippingCity    string          `gorm:"size:100;not null" json:"shippingCity"`
	ShippingState   string          `gorm:"size:100;not null" json:"shippingState"`
	ShippingZipCode string          `gorm:"size:20;not null" json:"shippingZipCode"`
	Status          string          `gorm:"size:20;default:'pending';not null" json:"status"`
	TrackingCode    string          `gorm:"size:100" json:"trackingCode,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
