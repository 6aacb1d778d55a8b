package services

import (
	"fmt"
	"testing"

	"github.com/kunalgupta016/street-clean-eats/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int

// setupTestDB points config.DB at a fresh in-memory database. Each test gets
// its own schema, so state never leaks between tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	config.DB = db
	t.Cleanup(func() {
		sqlDB.Close()
		config.DB = nil
	})
	return db
}

func validVendorInput() VendorRegistrationInput {
	return VendorRegistrationInput{
		FullName:        "Ravi Kumar",
		Email:           "ravi@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		MobileNumber:    "+91 9876543210",
		StallName:       "Ravi Chaat Corner",
		PrimaryCuisine:  "north_indian",
		OperationType:   "permanent_stall",
		AddressLine1:    "12 MG Road",
		City:            "Bengaluru",
		State:           "Karnataka",
		Pincode:         "560001",
	}
}
