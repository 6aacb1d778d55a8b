package services

import (
	"fmt"

	"github.com/kunalgupta016/street-clean-eats/config"
	"github.com/kunalgupta016/street-clean-eats/models"
	"github.com/kunalgupta016/street-clean-eats/utils"

	"github.com/google/uuid"
)

func GetVendorDetails(userID uuid.UUID) (*models.VendorDetails, error) {
	return selectOne[models.VendorDetails]("user_id", userID)
}

func GetVendorDetailsByID(vendorID uuid.UUID) (*models.VendorDetails, error) {
	return selectOne[models.VendorDetails]("id", vendorID)
}

type VendorDetailsInput struct {
	StallName           string                `json:"stall_name"`
	BusinessDescription string                `json:"business_description"`
	PrimaryCuisine      models.CuisineType    `json:"primary_cuisine"`
	OperationType       models.OperationType  `json:"operation_type"`
	AddressLine1        string                `json:"address_line_1"`
	AddressLine2        string                `json:"address_line_2"`
	Landmark            string                `json:"landmark"`
	City                string                `json:"city"`
	State               string                `json:"state"`
	Pincode             string                `json:"pincode"`
	Latitude            *float64              `json:"latitude"`
	Longitude           *float64              `json:"longitude"`
	OperatingHours      models.OperatingHours `json:"operating_hours"`
	IsFssaiCertified    *bool                 `json:"is_fssai_certified"`
	FssaiLicenseNumber  string                `json:"fssai_license_number"`
}

// UpdateVendorDetails patches the mutable business fields. The derived
// rating columns are not accepted here; review writes own them.
func UpdateVendorDetails(userID uuid.UUID, in VendorDetailsInput) (*models.VendorDetails, error) {
	if in.PrimaryCuisine != "" && !in.PrimaryCuisine.Valid() {
		return nil, ValidationErrors{{Field: "primary_cuisine", Message: "unknown cuisine: " + string(in.PrimaryCuisine)}}
	}
	if in.OperationType != "" && !in.OperationType.Valid() {
		return nil, ValidationErrors{{Field: "operation_type", Message: "unknown operation type: " + string(in.OperationType)}}
	}

	details, err := GetVendorDetails(userID)
	if err != nil {
		return nil, err
	}

	if in.StallName != "" {
		details.StallName = in.StallName
	}
	if in.BusinessDescription != "" {
		details.BusinessDescription = in.BusinessDescription
	}
	if in.PrimaryCuisine != "" {
		details.PrimaryCuisine = in.PrimaryCuisine
	}
	if in.OperationType != "" {
		details.OperationType = in.OperationType
	}
	if in.AddressLine1 != "" {
		details.AddressLine1 = in.AddressLine1
	}
	if in.AddressLine2 != "" {
		details.AddressLine2 = in.AddressLine2
	}
	if in.Landmark != "" {
		details.Landmark = in.Landmark
	}
	if in.City != "" {
		details.City = in.City
	}
	if in.State != "" {
		details.State = in.State
	}
	if in.Pincode != "" {
		details.Pincode = in.Pincode
	}
	if in.Latitude != nil {
		details.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		details.Longitude = in.Longitude
	}
	if in.OperatingHours != nil {
		details.OperatingHours = in.OperatingHours
	}
	if in.IsFssaiCertified != nil {
		details.IsFssaiCertified = *in.IsFssaiCertified
	}
	if in.FssaiLicenseNumber != "" {
		details.FssaiLicenseNumber = in.FssaiLicenseNumber
	}

	if err := config.DB.Save(details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// AddStallImage uploads a base64 image and appends its URL to the gallery.
func AddStallImage(userID uuid.UUID, base64Image string) (*models.VendorDetails, error) {
	details, err := GetVendorDetails(userID)
	if err != nil {
		return nil, err
	}

	url, err := utils.UploadBase64Image(base64Image, "stall-images", details.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %v", err)
	}

	details.StallImages = append(details.StallImages, url)
	if err := config.DB.Save(details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

type HygieneInput struct {
	UsesGloves          *bool `json:"uses_gloves"`
	ServesPurifiedWater *bool `json:"serves_purified_water"`
	RegularCleaning     *bool `json:"regular_cleaning"`
	ProperWasteDisposal *bool `json:"proper_waste_disposal"`
	CleanUniforms       *bool `json:"clean_uniforms"`
}

func GetHygienePractices(vendorID uuid.UUID) (*models.VendorHygienePractices, error) {
	return selectOne[models.VendorHygienePractices]("vendor_id", vendorID)
}

func UpdateHygienePractices(vendorID uuid.UUID, in HygieneInput) (*models.VendorHygienePractices, error) {
	practices, err := GetHygienePractices(vendorID)
	if err != nil {
		return nil, err
	}

	setBool(&practices.UsesGloves, in.UsesGloves)
	setBool(&practices.ServesPurifiedWater, in.ServesPurifiedWater)
	setBool(&practices.RegularCleaning, in.RegularCleaning)
	setBool(&practices.ProperWasteDisposal, in.ProperWasteDisposal)
	setBool(&practices.CleanUniforms, in.CleanUniforms)

	if err := config.DB.Save(practices).Error; err != nil {
		return nil, err
	}
	return practices, nil
}

// AddHygienePhoto uploads a declaration photo and appends its URL.
func AddHygienePhoto(vendorID uuid.UUID, base64Image string) (*models.VendorHygienePractices, error) {
	practices, err := GetHygienePractices(vendorID)
	if err != nil {
		return nil, err
	}

	url, err := utils.UploadBase64Image(base64Image, "hygiene-photos", vendorID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %v", err)
	}

	practices.HygienePhotoURLs = append(practices.HygienePhotoURLs, url)
	if err := config.DB.Save(practices).Error; err != nil {
		return nil, err
	}
	return practices, nil
}

type SustainabilityInput struct {
	UsesBiodegradablePackaging   *bool `json:"uses_biodegradable_packaging"`
	OffersReusableContainers     *bool `json:"offers_reusable_containers"`
	MinimizesPlastic             *bool `json:"minimizes_plastic"`
	CompostsFoodWaste            *bool `json:"composts_food_waste"`
	SegregatesWaste              *bool `json:"segregates_waste"`
	UsesPublicBins               *bool `json:"uses_public_bins"`
	WorksWithWasteCollector      *bool `json:"works_with_waste_collector"`
	RecyclesPackaging            *bool `json:"recycles_packaging"`
	InterestedInWasteInitiatives *bool `json:"interested_in_waste_initiatives"`
}

func GetSustainabilityPractices(vendorID uuid.UUID) (*models.VendorSustainabilityPractices, error) {
	return selectOne[models.VendorSustainabilityPractices]("vendor_id", vendorID)
}

func UpdateSustainabilityPractices(vendorID uuid.UUID, in SustainabilityInput) (*models.VendorSustainabilityPractices, error) {
	practices, err := GetSustainabilityPractices(vendorID)
	if err != nil {
		return nil, err
	}

	setBool(&practices.UsesBiodegradablePackaging, in.UsesBiodegradablePackaging)
	setBool(&practices.OffersReusableContainers, in.OffersReusableContainers)
	setBool(&practices.MinimizesPlastic, in.MinimizesPlastic)
	setBool(&practices.CompostsFoodWaste, in.CompostsFoodWaste)
	setBool(&practices.SegregatesWaste, in.SegregatesWaste)
	setBool(&practices.UsesPublicBins, in.UsesPublicBins)
	setBool(&practices.WorksWithWasteCollector, in.WorksWithWasteCollector)
	setBool(&practices.RecyclesPackaging, in.RecyclesPackaging)
	setBool(&practices.InterestedInWasteInitiatives, in.InterestedInWasteInitiatives)

	if err := config.DB.Save(practices).Error; err != nil {
		return nil, err
	}
	return practices, nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// ListVendors returns vendor cards for the public directory, optionally
// filtered by cuisine.
func ListVendors(cuisine models.CuisineType) ([]models.VendorDetails, error) {
	var vendors []models.VendorDetails
	q := config.DB.Order("average_rating desc")
	if cuisine != "" {
		if !cuisine.Valid() {
			return nil, ValidationErrors{{Field: "cuisine", Message: "unknown cuisine: " + string(cuisine)}}
		}
		q = q.Where("primary_cuisine = ?", cuisine)
	}
	if err := q.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}
