package services

import (
	"testing"

	"github.com/kunalgupta016/street-clean-eats/models"
)

func TestGetDashboardOverview(t *testing.T) {
	setupTestDB(t)
	reg := registerTestVendor(t)
	customerID := registerTestCustomer(t)

	itemID := addTestMenuItem(t, reg.VendorID, "Misal Pav", 50, true)
	addTestMenuItem(t, reg.VendorID, "Kothimbir Vadi", 40, false)

	first, err := PlaceOrder(reg.VendorID, customerID, PlaceOrderInput{
		Items: []OrderItemInput{{MenuItemID: itemID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if _, err := PlaceOrder(reg.VendorID, customerID, PlaceOrderInput{
		Items: []OrderItemInput{{MenuItemID: itemID, Quantity: 2}},
	}); err != nil {
		t.Fatalf("place order: %v", err)
	}
	if _, err := UpdateOrderStatus(reg.VendorID, first.ID, models.OrderPreparing); err != nil {
		t.Fatalf("update order status: %v", err)
	}
	if _, err := CreateReview(reg.VendorID, customerID, ReviewInput{Rating: 4}); err != nil {
		t.Fatalf("create review: %v", err)
	}

	overview, err := GetDashboardOverview(reg.VendorID)
	if err != nil {
		t.Fatalf("dashboard overview: %v", err)
	}
	if overview.StallName != "Ravi Chaat Corner" {
		t.Fatalf("stall_name = %q", overview.StallName)
	}
	if overview.MenuItems != 2 {
		t.Fatalf("menu_items = %d, want 2", overview.MenuItems)
	}
	if overview.PendingOrders != 1 {
		t.Fatalf("pending_orders = %d, want 1", overview.PendingOrders)
	}
	if overview.TotalOrders != 2 {
		t.Fatalf("total_orders = %d, want 2", overview.TotalOrders)
	}
	if overview.Reviews != 1 {
		t.Fatalf("reviews = %d, want 1", overview.Reviews)
	}
	if overview.AverageRating != 4 {
		t.Fatalf("average_rating = %v, want 4", overview.AverageRating)
	}
}
