package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the base account record shared by customers and vendors.
// UserType is written once at registration; no update path touches it.
type Profile struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID     `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	UserType          UserType      `gorm:"not null" json:"user_type"`
	FullName          string        `gorm:"not null" json:"full_name"`
	MobileNumber      string        `json:"mobile_number,omitempty"`
	PreferredLocation string        `json:"preferred_location,omitempty"`
	FavoriteCuisines  []CuisineType `gorm:"serializer:json" json:"favorite_cuisines,omitempty"`
	MarketingOptIn    bool          `gorm:"default:false" json:"marketing_opt_in"`
	ProfilePictureURL string        `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
