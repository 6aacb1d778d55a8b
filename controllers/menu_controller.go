package controllers

import (
	"net/http"

	"github.com/kunalgupta016/street-clean-eats/middlewares"
	"github.com/kunalgupta016/street-clean-eats/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListMenu(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	items, err := services.ListMenu(details.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func CreateMenuItem(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	var input services.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.CreateMenuItem(details.ID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateMenuItem(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var input services.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.UpdateMenuItem(details.ID, itemID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteMenuItem(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := services.DeleteMenuItem(details.ID, itemID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}
