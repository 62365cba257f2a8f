package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review carries a calendar date stamp without a time component; Date is
// kept as YYYY-MM-DD. CreatedAt still orders listings newest-first.
type Review struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Author    string    `gorm:"size:255;not null" json:"author"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Date      string    `gorm:"size:10;not null" json:"date"`
	ProductID string    `gorm:"size:36;not null;index" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
