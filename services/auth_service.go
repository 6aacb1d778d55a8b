package services

import (
	"errors"

	"github.com/kunalgupta016/street-clean-eats/config"
	"github.com/kunalgupta016/street-clean-eats/logger"
	"github.com/kunalgupta016/street-clean-eats/metrics"
	"github.com/kunalgupta016/street-clean-eats/models"
	"github.com/kunalgupta016/street-clean-eats/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegistrationStep names the dependent writes that follow identity creation.
type RegistrationStep string

const (
	StepProfile        RegistrationStep = "profile"
	StepVendorDetails  RegistrationStep = "vendor_details"
	StepHygiene        RegistrationStep = "hygiene_practices"
	StepSustainability RegistrationStep = "sustainability_practices"
)

// StepFailure reports one dependent write that did not land. The identity
// itself is already created when these occur; there is no rollback.
type StepFailure struct {
	Step   RegistrationStep `json:"step"`
	Reason string           `json:"reason"`
}

type CustomerRegistrationInput struct {
	FullName          string               `json:"full_name"`
	Email             string               `json:"email"`
	Password          string               `json:"password"`
	ConfirmPassword   string               `json:"confirm_password"`
	MobileNumber      string               `json:"mobile_number"`
	PreferredLocation string               `json:"preferred_location"`
	FavoriteCuisines  []models.CuisineType `json:"favorite_cuisines"`
	MarketingOptIn    bool                 `json:"marketing_opt_in"`
}

// Validate checks the draft without touching the database. A non-empty
// result blocks submission entirely.
func (in CustomerRegistrationInput) Validate() ValidationErrors {
	var errs ValidationErrors
	errs = required(errs, "full_name", in.FullName)
	errs = required(errs, "email", in.Email)
	errs = required(errs, "password", in.Password)

	if in.Password != "" && len(in.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "must be at least 6 characters long"})
	}
	if in.Password != in.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirm_password", Message: "passwords do not match"})
	}
	for _, c := range in.FavoriteCuisines {
		if !c.Valid() {
			errs = append(errs, FieldError{Field: "favorite_cuisines", Message: "unknown cuisine: " + string(c)})
		}
	}
	return errs
}

type VendorRegistrationInput struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	MobileNumber    string `json:"mobile_number"`

	StallName           string               `json:"stall_name"`
	BusinessDescription string               `json:"business_description"`
	PrimaryCuisine      models.CuisineType   `json:"primary_cuisine"`
	OperationType       models.OperationType `json:"operation_type"`

	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	Landmark     string `json:"landmark"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`

	IsFssaiCertified   bool   `json:"is_fssai_certified"`
	FssaiLicenseNumber string `json:"fssai_license_number"`

	UsesGloves          bool `json:"uses_gloves"`
	ServesPurifiedWater bool `json:"serves_purified_water"`
	RegularCleaning     bool `json:"regular_cleaning"`
	ProperWasteDisposal bool `json:"proper_waste_disposal"`
	CleanUniforms       bool `json:"clean_uniforms"`

	UsesBiodegradablePackaging   bool `json:"uses_biodegradable_packaging"`
	OffersReusableContainers     bool `json:"offers_reusable_containers"`
	MinimizesPlastic             bool `json:"minimizes_plastic"`
	CompostsFoodWaste            bool `json:"composts_food_waste"`
	SegregatesWaste              bool `json:"segregates_waste"`
	UsesPublicBins               bool `json:"uses_public_bins"`
	WorksWithWasteCollector      bool `json:"works_with_waste_collector"`
	RecyclesPackaging            bool `json:"recycles_packaging"`
	InterestedInWasteInitiatives bool `json:"interested_in_waste_initiatives"`
}

func (in VendorRegistrationInput) Validate() ValidationErrors {
	var errs ValidationErrors
	errs = required(errs, "full_name", in.FullName)
	errs = required(errs, "email", in.Email)
	errs = required(errs, "password", in.Password)
	errs = required(errs, "mobile_number", in.MobileNumber)
	errs = required(errs, "stall_name", in.StallName)
	errs = required(errs, "primary_cuisine", string(in.PrimaryCuisine))
	errs = required(errs, "operation_type", string(in.OperationType))
	errs = required(errs, "address_line_1", in.AddressLine1)
	errs = required(errs, "city", in.City)
	errs = required(errs, "state", in.State)
	errs = required(errs, "pincode", in.Pincode)

	if in.Password != "" && len(in.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "must be at least 6 characters long"})
	}
	if in.Password != in.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirm_password", Message: "passwords do not match"})
	}
	if in.PrimaryCuisine != "" && !in.PrimaryCuisine.Valid() {
		errs = append(errs, FieldError{Field: "primary_cuisine", Message: "unknown cuisine: " + string(in.PrimaryCuisine)})
	}
	if in.OperationType != "" && !in.OperationType.Valid() {
		errs = append(errs, FieldError{Field: "operation_type", Message: "unknown operation type: " + string(in.OperationType)})
	}
	return errs
}

type RegistrationResult struct {
	UserID     uuid.UUID     `json:"user_id"`
	ProfileID  uuid.UUID     `json:"profile_id,omitempty"`
	VendorID   uuid.UUID     `json:"vendor_id,omitempty"`
	Token      string        `json:"token"`
	Incomplete []StepFailure `json:"incomplete,omitempty"`
}

// createIdentity hashes the password and stores the auth user. This is the
// only step whose failure blocks registration.
func createIdentity(email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{Email: email, Password: hashed}
	if err := insert(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RegisterCustomer creates the identity, then the customer profile. The
// profile write is best-effort: its failure is reported in the result, not
// hidden behind a success toast.
func RegisterCustomer(in CustomerRegistrationInput) (*RegistrationResult, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, errs
	}

	user, err := createIdentity(in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	result := &RegistrationResult{UserID: user.ID}

	profile := models.Profile{
		UserID:            user.ID,
		UserType:          models.UserTypeCustomer,
		FullName:          in.FullName,
		MobileNumber:      in.MobileNumber,
		PreferredLocation: in.PreferredLocation,
		FavoriteCuisines:  in.FavoriteCuisines,
		MarketingOptIn:    in.MarketingOptIn,
	}
	if err := insert(&profile); err != nil {
		result.Incomplete = append(result.Incomplete, stepFailed(StepProfile, err))
	} else {
		result.ProfileID = profile.ID
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	result.Token = token

	metrics.RegistrationsTotal.WithLabelValues(string(models.UserTypeCustomer)).Inc()
	return result, nil
}

// RegisterVendor runs the four dependent writes in sequence: profile, vendor
// details keyed to the identity, then hygiene and sustainability keyed to the
// vendor details row. There is no transaction spanning them; a failed step
// aborts only the steps that need its output, and every step that did not
// land is reported.
func RegisterVendor(in VendorRegistrationInput) (*RegistrationResult, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, errs
	}

	user, err := createIdentity(in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	result := &RegistrationResult{UserID: user.ID}

	profile := models.Profile{
		UserID:       user.ID,
		UserType:     models.UserTypeVendor,
		FullName:     in.FullName,
		MobileNumber: in.MobileNumber,
	}
	if err := insert(&profile); err != nil {
		result.Incomplete = append(result.Incomplete, stepFailed(StepProfile, err),
			stepSkipped(StepVendorDetails, StepProfile),
			stepSkipped(StepHygiene, StepProfile),
			stepSkipped(StepSustainability, StepProfile),
		)
		return finishVendor(result, user, in)
	}
	result.ProfileID = profile.ID

	details := models.VendorDetails{
		UserID:              user.ID,
		StallName:           in.StallName,
		BusinessDescription: in.BusinessDescription,
		PrimaryCuisine:      in.PrimaryCuisine,
		OperationType:       in.OperationType,
		AddressLine1:        in.AddressLine1,
		AddressLine2:        in.AddressLine2,
		Landmark:            in.Landmark,
		City:                in.City,
		State:               in.State,
		Pincode:             in.Pincode,
		IsFssaiCertified:    in.IsFssaiCertified,
		FssaiLicenseNumber:  in.FssaiLicenseNumber,
	}
	if err := insert(&details); err != nil {
		result.Incomplete = append(result.Incomplete, stepFailed(StepVendorDetails, err))
		result.Incomplete = append(result.Incomplete,
			stepSkipped(StepHygiene, StepVendorDetails),
			stepSkipped(StepSustainability, StepVendorDetails),
		)
		return finishVendor(result, user, in)
	}
	result.VendorID = details.ID

	hygiene := models.VendorHygienePractices{
		VendorID:            details.ID,
		UsesGloves:          in.UsesGloves,
		ServesPurifiedWater: in.ServesPurifiedWater,
		RegularCleaning:     in.RegularCleaning,
		ProperWasteDisposal: in.ProperWasteDisposal,
		CleanUniforms:       in.CleanUniforms,
	}
	if err := insert(&hygiene); err != nil {
		result.Incomplete = append(result.Incomplete, stepFailed(StepHygiene, err))
	}

	sustainability := models.VendorSustainabilityPractices{
		VendorID:                     details.ID,
		UsesBiodegradablePackaging:   in.UsesBiodegradablePackaging,
		OffersReusableContainers:     in.OffersReusableContainers,
		MinimizesPlastic:             in.MinimizesPlastic,
		CompostsFoodWaste:            in.CompostsFoodWaste,
		SegregatesWaste:              in.SegregatesWaste,
		UsesPublicBins:               in.UsesPublicBins,
		WorksWithWasteCollector:      in.WorksWithWasteCollector,
		RecyclesPackaging:            in.RecyclesPackaging,
		InterestedInWasteInitiatives: in.InterestedInWasteInitiatives,
	}
	if err := insert(&sustainability); err != nil {
		result.Incomplete = append(result.Incomplete, stepFailed(StepSustainability, err))
	}

	return finishVendor(result, user, in)
}

func finishVendor(result *RegistrationResult, user *models.User, in VendorRegistrationInput) (*RegistrationResult, error) {
	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	result.Token = token

	metrics.RegistrationsTotal.WithLabelValues(string(models.UserTypeVendor)).Inc()
	if len(result.Incomplete) == 0 {
		go func() {
			if err := utils.SendVendorWelcomeEmail(user.Email, in.StallName); err != nil {
				logger.L().Warn("welcome email failed", zap.String("email", user.Email), zap.Error(err))
			}
		}()
	}
	return result, nil
}

func stepFailed(step RegistrationStep, err error) StepFailure {
	logger.L().Error("registration step failed",
		zap.String("step", string(step)),
		zap.Error(err),
	)
	metrics.RegistrationStepFailures.WithLabelValues(string(step)).Inc()
	reason := "write failed"
	if errors.Is(err, ErrConflict) {
		reason = "record already exists"
	}
	return StepFailure{Step: step, Reason: reason}
}

func stepSkipped(step, dependsOn RegistrationStep) StepFailure {
	return StepFailure{Step: step, Reason: "skipped: depends on " + string(dependsOn)}
}

// AuthenticateUser verifies credentials and returns a signed token.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	return selectOne[models.User]("email", email)
}
