package services

import (
	"errors"
	"testing"

	"github.com/kunalgupta016/street-clean-eats/models"

	"github.com/google/uuid"
)

func registerTestVendor(t *testing.T) *RegistrationResult {
	t.Helper()
	result, err := RegisterVendor(validVendorInput())
	if err != nil {
		t.Fatalf("register vendor: %v", err)
	}
	if len(result.Incomplete) != 0 {
		t.Fatalf("vendor registration incomplete: %v", result.Incomplete)
	}
	return result
}

func boolPtr(b bool) *bool { return &b }

func TestUpdateVendorDetails_PatchesMutableFields(t *testing.T) {
	setupTestDB(t)
	reg := registerTestVendor(t)

	details, err := UpdateVendorDetails(reg.UserID, VendorDetailsInput{
		StallName:      "Ravi Dosa Corner",
		PrimaryCuisine: "south_indian",
		OperatingHours: models.OperatingHours{
			"monday": {Open: "08:00", Close: "21:00"},
			"sunday": {Closed: true},
		},
	})
	if err != nil {
		t.Fatalf("update details: %v", err)
	}
	if details.StallName != "Ravi Dosa Corner" {
		t.Fatalf("stall_name = %q", details.StallName)
	}
	if details.PrimaryCuisine != "south_indian" {
		t.Fatalf("primary_cuisine = %q", details.PrimaryCuisine)
	}
	if details.City != "Bengaluru" {
		t.Fatalf("untouched field changed: city = %q", details.City)
	}

	reloaded, err := GetVendorDetails(reg.UserID)
	if err != nil {
		t.Fatalf("reload details: %v", err)
	}
	if reloaded.OperatingHours["monday"].Open != "08:00" || !reloaded.OperatingHours["sunday"].Closed {
		t.Fatalf("operating_hours not persisted: %v", reloaded.OperatingHours)
	}
}

func TestUpdateVendorDetails_RejectsUnknownEnumValues(t *testing.T) {
	setupTestDB(t)
	reg := registerTestVendor(t)

	_, err := UpdateVendorDetails(reg.UserID, VendorDetailsInput{PrimaryCuisine: "fusion"})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}

	details, err := GetVendorDetails(reg.UserID)
	if err != nil {
		t.Fatalf("reload details: %v", err)
	}
	if details.PrimaryCuisine != "north_indian" {
		t.Fatalf("cuisine changed despite rejection: %q", details.PrimaryCuisine)
	}
}

func TestUpdateHygienePractices_OnlySuppliedFieldsChange(t *testing.T) {
	setupTestDB(t)
	reg := registerTestVendor(t)

	practices, err := UpdateHygienePractices(reg.VendorID, HygieneInput{
		UsesGloves:      boolPtr(true),
		RegularCleaning: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update hygiene: %v", err)
	}
	if !practices.UsesGloves || !practices.RegularCleaning {
		t.Fatalf("declared booleans not set: %+v", practices)
	}
	if practices.CleanUniforms || practices.ServesPurifiedWater {
		t.Fatalf("unsupplied booleans changed: %+v", practices)
	}

	// Flip one back off.
	practices, err = UpdateHygienePractices(reg.VendorID, HygieneInput{UsesGloves: boolPtr(false)})
	if err != nil {
		t.Fatalf("update hygiene: %v", err)
	}
	if practices.UsesGloves || !practices.RegularCleaning {
		t.Fatalf("patch semantics broken: %+v", practices)
	}
}

func TestUpdateSustainabilityPractices(t *testing.T) {
	setupTestDB(t)
	reg := registerTestVendor(t)

	practices, err := UpdateSustainabilityPractices(reg.VendorID, SustainabilityInput{
		SegregatesWaste:   boolPtr(true),
		CompostsFoodWaste: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update sustainability: %v", err)
	}
	if !practices.SegregatesWaste || !practices.CompostsFoodWaste {
		t.Fatalf("declared booleans not set: %+v", practices)
	}
	if practices.UsesPublicBins {
		t.Fatalf("unsupplied boolean changed: %+v", practices)
	}
}

func TestGetHygienePractices_MissingRowIsNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetHygienePractices(uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListVendors_FiltersByCuisine(t *testing.T) {
	setupTestDB(t)
	registerTestVendor(t)

	in2 := validVendorInput()
	in2.Email = "meena@example.com"
	in2.StallName = "Meena Momos"
	in2.PrimaryCuisine = "chinese"
	if _, err := RegisterVendor(in2); err != nil {
		t.Fatalf("register second vendor: %v", err)
	}

	all, err := ListVendors("")
	if err != nil {
		t.Fatalf("list vendors: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("vendor count = %d, want 2", len(all))
	}

	chinese, err := ListVendors("chinese")
	if err != nil {
		t.Fatalf("list vendors by cuisine: %v", err)
	}
	if len(chinese) != 1 || chinese[0].StallName != "Meena Momos" {
		t.Fatalf("filtered vendors = %v", chinese)
	}

	if _, err := ListVendors("martian"); err == nil {
		t.Fatal("expected validation error for unknown cuisine")
	}
}
