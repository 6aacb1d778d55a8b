package controllers

import (
	"net/http"

	"github.com/kunalgupta016/street-clean-eats/middlewares"
	"github.com/kunalgupta016/street-clean-eats/services"

	"github.com/gin-gonic/gin"
)

func GetHygiene(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	practices, err := services.GetHygienePractices(details.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, practices)
}

func UpdateHygiene(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	var input services.HygieneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	practices, err := services.UpdateHygienePractices(details.ID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, practices)
}

func UploadHygienePhoto(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	var input imageUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	practices, err := services.AddHygienePhoto(details.ID, input.Image)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, practices)
}

func GetSustainability(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	practices, err := services.GetSustainabilityPractices(details.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, practices)
}

func UpdateSustainability(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	var input services.SustainabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	practices, err := services.UpdateSustainabilityPractices(details.ID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, practices)
}
