package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Address struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID     string    `gorm:"size:36;not null;index" json:"userId"`
	Label      string    `gorm:"size:100" json:"label,omitempty"`
	Recipient  string    `gorm:"size:255;not null" json:"recipient"`
	Street     string    `gorm:"size:255;not null" json:"street"`
	Number     string    `gorm:"size:20;not null" json:"number"`
	Complement string    `gorm:"size:255" json:"complement,omitempty"`
	District   string    `gorm:"size:100;not null" json:"district"`
	City       string    `gorm:"size:100;not null" json:"city"`
	State      string    `gorm:"size:100;not null" json:"state"`
	Zip        string    `gorm:"size:20;not null" json:"zip"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}
