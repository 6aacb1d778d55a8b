package controllers

import (
	"net/http"

	"github.com/kunalgupta016/street-clean-eats/middlewares"
	"github.com/kunalgupta016/street-clean-eats/models"
	"github.com/kunalgupta016/street-clean-eats/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListOrders(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	orders, err := services.ListOrders(details.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func UpdateOrderStatus(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var input struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.UpdateOrderStatus(details.ID, orderID, input.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PlaceOrder is the customer-side endpoint on the public vendor surface.
func PlaceOrder(c *gin.Context) {
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

	var input services.PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.PlaceOrder(vendorID, profile.ID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
