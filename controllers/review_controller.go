package controllers

import (
	"net/http"

	"github.com/kunalgupta016/street-clean-eats/middlewares"
	"github.com/kunalgupta016/street-clean-eats/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListReviews(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	reviews, err := services.ListReviews(details.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func ReplyToReview(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	var input struct {
		Reply string `json:"reply" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := services.ReplyToReview(details.ID, reviewID, input.Reply)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// CreateReview is the customer-side endpoint on the public vendor surface.
func CreateReview(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
		return
	}

	profile, err := services.GetProfile(middlewares.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var input services.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := services.CreateReview(vendorID, profile.ID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
