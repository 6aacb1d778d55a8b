package services

import (
	"fmt"

	"github.com/kunalgupta016/street-clean-eats/config"
	"github.com/kunalgupta016/street-clean-eats/models"
	"github.com/kunalgupta016/street-clean-eats/utils"

	"github.com/google/uuid"
)

type ProfileInput struct {
	FullName          string               `json:"full_name"`
	MobileNumber      string               `json:"mobile_number"`
	PreferredLocation string               `json:"preferred_location"`
	FavoriteCuisines  []models.CuisineType `json:"favorite_cuisines"`
	MarketingOptIn    *bool                `json:"marketing_opt_in"`
	ProfilePicture    string               `json:"profile_picture"`
}

func GetProfile(userID uuid.UUID) (*models.Profile, error) {
	return selectOne[models.Profile]("user_id", userID)
}

// UpdateProfile patches the mutable profile fields. UserType is not touched;
// it is fixed at registration.
func UpdateProfile(userID uuid.UUID, in ProfileInput) (*models.Profile, error) {
	for _, c := range in.FavoriteCuisines {
		if !c.Valid() {
			return nil, ValidationErrors{{Field: "favorite_cuisines", Message: "unknown cuisine: " + string(c)}}
		}
	}

	profile, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if in.FullName != "" {
		profile.FullName = in.FullName
	}
	if in.MobileNumber != "" {
		profile.MobileNumber = in.MobileNumber
	}
	if in.PreferredLocation != "" {
		profile.PreferredLocation = in.PreferredLocation
	}
	if in.FavoriteCuisines != nil {
		profile.FavoriteCuisines = in.FavoriteCuisines
	}
	if in.MarketingOptIn != nil {
		profile.MarketingOptIn = *in.MarketingOptIn
	}
	if in.ProfilePicture != "" {
		url, err := utils.UploadBase64Image(in.ProfilePicture, "profile-pictures", userID.String())
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %v", err)
		}
		profile.ProfilePictureURL = url
	}

	if err := config.DB.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
