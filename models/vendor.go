package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayHours is one day's opening window inside OperatingHours.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// OperatingHours maps weekday name ("monday"...) to that day's window.
type OperatingHours map[string]DayHours

// VendorDetails is the business-facing record for one vendor profile.
// AverageRating and HygieneRating are derived; review writes recompute them
// and no update endpoint accepts them.
type VendorDetails struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	StallName           string         `gorm:"not null" json:"stall_name"`
	BusinessDescription string         `json:"business_description,omitempty"`
	PrimaryCuisine      CuisineType    `gorm:"not null" json:"primary_cuisine"`
	OperationType       OperationType  `gorm:"not null" json:"operation_type"`
	AddressLine1        string         `gorm:"not null" json:"address_line_1"`
	AddressLine2        string         `json:"address_line_2,omitempty"`
	Landmark            string         `json:"landmark,omitempty"`
	City                string         `gorm:"not null" json:"city"`
	State               string         `gorm:"not null" json:"state"`
	Pincode             string         `gorm:"not null" json:"pincode"`
	Latitude            *float64       `json:"latitude,omitempty"`
	Longitude           *float64       `json:"longitude,omitempty"`
	OperatingHours      OperatingHours `gorm:"serializer:json" json:"operating_hours,omitempty"`
	IsFssaiCertified    bool           `gorm:"default:false" json:"is_fssai_certified"`
	FssaiLicenseNumber  string         `json:"fssai_license_number,omitempty"`
	StallImages         []string       `gorm:"serializer:json" json:"stall_images,omitempty"`
	AverageRating       float64        `gorm:"default:0" json:"average_rating"`
	HygieneRating       float64        `gorm:"default:0" json:"hygiene_rating"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func (v *VendorDetails) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// VendorHygienePractices holds the five self-declared hygiene claims.
// One row per VendorDetails, created during vendor registration.
type VendorHygienePractices struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID            uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"vendor_id"`
	UsesGloves          bool      `gorm:"default:false" json:"uses_gloves"`
	ServesPurifiedWater bool      `gorm:"default:false" json:"serves_purified_water"`
	RegularCleaning     bool      `gorm:"default:false" json:"regular_cleaning"`
	ProperWasteDisposal bool      `gorm:"default:false" json:"proper_waste_disposal"`
	CleanUniforms       bool      `gorm:"default:false" json:"clean_uniforms"`
	HygienePhotoURLs    []string  `gorm:"serializer:json" json:"hygiene_photo_urls,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (h *VendorHygienePractices) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// VendorSustainabilityPractices holds the nine self-declared sustainability
// claims. One row per VendorDetails.
type VendorSustainabilityPractices struct {
	ID                           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID                     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"vendor_id"`
	UsesBiodegradablePackaging   bool      `gorm:"default:false" json:"uses_biodegradable_packaging"`
	OffersReusableContainers     bool      `gorm:"default:false" json:"offers_reusable_containers"`
	MinimizesPlastic             bool      `gorm:"default:false" json:"minimizes_plastic"`
	CompostsFoodWaste            bool      `gorm:"default:false" json:"composts_food_waste"`
	SegregatesWaste              bool      `gorm:"default:false" json:"segregates_waste"`
	UsesPublicBins               bool      `gorm:"default:false" json:"uses_public_bins"`
	WorksWithWasteCollector      bool      `gorm:"default:false" json:"works_with_waste_collector"`
	RecyclesPackaging            bool      `gorm:"default:false" json:"recycles_packaging"`
	InterestedInWasteInitiatives bool      `gorm:"default:false" json:"interested_in_waste_initiatives"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

func (s *VendorSustainabilityPractices) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
