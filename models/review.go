package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID    uuid.UUID `gorm:"type:uuid;index;not null" json:"vendor_id"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	Rating      int       `gorm:"not null" json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	VendorReply string    `json:"vendor_reply,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
