package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem snapshots the product at purchase time. Items are immutable
// once created; price changes on the catalog never touch past orders.
type OrderItem struct {
	ID           string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID      string          `gorm:"size:36;not null;index" json:"orderId"`
	ProductID    string          `gorm:"size:36;not null" json:"productId"`
	ProductName  string          `gorm:"size:255;not null" json:"productName"`
	ProductTeam  string          `gorm:"size:255" json:"productTeam"`
	ProductImage string          `gorm:"size:512" json:"productImage"`
	Size         string          `gorm:"size:10;not null" json:"size"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
