package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID    uuid.UUID `gorm:"type:uuid;index;not null" json:"vendor_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `json:"category,omitempty"`
	IsVeg       bool      `gorm:"default:false" json:"is_veg"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
