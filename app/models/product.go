package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Team        string          `gorm:"size:255;not null;index" json:"team"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Images      StringList      `gorm:"type:text;not null" json:"images"`
	Description string          `gorm:"type:text" json:"description"`
	IsNew       bool            `gorm:"default:false" json:"isNew"`
	Category    string          `gorm:"size:100;not null;index" json:"category"`
	Sizes       StringList      `gorm:"type:text" json:"sizes"`
	Rating      decimal.Decimal `gorm:"type:decimal(3,1);default:0.0" json:"rating"`
	Stock       int             `gorm:"default:0" json:"stock"`
	Reviews     []Review        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// HasSize reports whether size is one of the product's offered sizes.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
