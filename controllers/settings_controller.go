package controllers

import (
	"net/http"

	"github.com/kunalgupta016/street-clean-eats/middlewares"
	"github.com/kunalgupta016/street-clean-eats/services"

	"github.com/gin-gonic/gin"
)

func ChangePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ChangePassword(middlewares.UserID(c), input.CurrentPassword, input.NewPassword); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func UpdateMarketingOptIn(c *gin.Context) {
	var input struct {
		MarketingOptIn *bool `json:"marketing_opt_in" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpdateProfile(middlewares.UserID(c), services.ProfileInput{MarketingOptIn: input.MarketingOptIn})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteAccount disables the identity; the actual data removal is handled
// by support, so the request is only accepted, not completed.
func DeleteAccount(c *gin.Context) {
	if err := services.DisableAccount(middlewares.UserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "account disabled; contact support to complete deletion"})
}
