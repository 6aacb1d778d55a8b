package controllers

import (
	"net/http"

	"github.com/kunalgupta016/street-clean-eats/models"
	"github.com/kunalgupta016/street-clean-eats/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetEnums exposes the closed value sets so forms can populate their choice
// lists from the same source of truth the validators use.
func GetEnums(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cuisine_type":   models.CuisineTypes,
		"operation_type": models.OperationTypes,
		"user_type":      models.UserTypes,
	})
}

func ListVendors(c *gin.Context) {
	vendors, err := services.ListVendors(models.CuisineType(c.Query("cuisine")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

// GetVendorCard is the public stall page: details, declarations and the
// available menu in one response.
func GetVendorCard(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
		return
	}

	details, err := services.GetVendorDetailsByID(vendorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp := gin.H{"vendor": details}

	// Declarations may be missing for partially-initialized vendors.
	if hygiene, err := services.GetHygienePractices(vendorID); err == nil {
		resp["hygiene"] = hygiene
	}
	if sustainability, err := services.GetSustainabilityPractices(vendorID); err == nil {
		resp["sustainability"] = sustainability
	}

	menu, err := services.ListAvailableMenu(vendorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp["menu"] = menu

	reviews, err := services.ListReviews(vendorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp["reviews"] = reviews

	c.JSON(http.StatusOK, resp)
}
