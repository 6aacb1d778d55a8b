package controllers

import (
	"net/http"

	"github.com/kunalgupta016/street-clean-eats/middlewares"
	"github.com/kunalgupta016/street-clean-eats/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard is the overview section: profile, details (possibly nil for a
// partially-initialized vendor) and fresh counters.
func GetDashboard(c *gin.Context) {
	profile := middlewares.Profile(c)
	details := middlewares.VendorDetails(c)

	resp := gin.H{
		"profile":        profile,
		"vendor_details": details,
	}
	if details != nil {
		overview, err := services.GetDashboardOverview(details.ID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		resp["overview"] = overview
	}

	c.JSON(http.StatusOK, resp)
}

func GetVendorProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profile":        middlewares.Profile(c),
		"vendor_details": middlewares.VendorDetails(c),
	})
}

func UpdateVendorProfile(c *gin.Context) {
	var input services.VendorDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details, err := services.UpdateVendorDetails(middlewares.UserID(c), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

type imageUploadInput struct {
	Image string `json:"image" binding:"required"`
}

func UploadStallImage(c *gin.Context) {
	var input imageUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details, err := services.AddStallImage(middlewares.UserID(c), input.Image)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}
