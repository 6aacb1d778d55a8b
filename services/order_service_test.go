package services

import (
	"errors"
	"testing"

	"github.com/kunalgupta016/street-clean-eats/models"

	"github.com/google/uuid"
)

func registerTestCustomer(t *testing.T) uuid.UUID {
	t.Helper()
	result, err := RegisterCustomer(CustomerRegistrationInput{
		FullName:        "Asha Rao",
		Email:           "asha@example.com",
		Password:        "secret99",
		ConfirmPassword: "secret99",
		MobileNumber:    "9876500000",
	})
	if err != nil {
		t.Fatalf("register customer: %v", err)
	}
	return result.UserID
}

func TestPlaceOrder_PricesComeFromMenu(t *testing.T) {
	setupTestDB(t)
	reg := registerTestVendor(t)
	customerID := registerTestCustomer(t)

	dosaID := addTestMenuItem(t, reg.VendorID, "Masala Dosa", 60, true)
	chaiID := addTestMenuItem(t, reg.VendorID, "Cutting Chai", 15, true)

	order, err := PlaceOrder(reg.VendorID, customerID, PlaceOrderInput{
		Items: []OrderItemInput{
			{MenuItemID: dosaID, Quantity: 2},
			{MenuItemID: chaiID, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.Status != models.OrderPending {
		t.Fatalf("new order status = %q", order.Status)
	}
	if order.Total != 2*60+3*15 {
		t.Fatalf("order total = %v, want 165", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("order item count = %d", len(order.Items))
	}
	for _, li := range order.Items {
		if li.Name == "" || li.UnitPrice <= 0 {
			t.Fatalf("line item missing snapshot: %+v", li)
		}
	}

	orders, err := ListOrders(reg.VendorID)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || len(orders[0].Items) != 2 {
		t.Fatalf("listed orders = %+v", orders)
	}
}

func TestPlaceOrder_RejectsUnavailableAndEmpty(t *testing.T) {
	db := setupTestDB(t)
	reg := registerTestVendor(t)
	customerID := registerTestCustomer(t)

	offMenuID := addTestMenuItem(t, reg.VendorID, "Sold Out Thali", 120, false)

	if _, err := PlaceOrder(reg.VendorID, customerID, PlaceOrderInput{}); err == nil {
		t.Fatal("expected error for empty order")
	}

	_, err := PlaceOrder(reg.VendorID, customerID, PlaceOrderInput{
		Items: []OrderItemInput{{MenuItemID: offMenuID, Quantity: 1}},
	})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation error for unavailable item, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected order was persisted, count = %d", count)
	}
}

func TestUpdateOrderStatus_FollowsTransitionTable(t *testing.T) {
	setupTestDB(t)
	reg := registerTestVendor(t)
	customerID := registerTestCustomer(t)
	itemID := addTestMenuItem(t, reg.VendorID, "Bhel Puri", 35, true)

	order, err := PlaceOrder(reg.VendorID, customerID, PlaceOrderInput{
		Items: []OrderItemInput{{MenuItemID: itemID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	// pending -> ready skips preparing and must be rejected.
	if _, err := UpdateOrderStatus(reg.VendorID, order.ID, models.OrderReady); err == nil {
		t.Fatal("expected illegal transition to be rejected")
	}

	for _, to := range []models.OrderStatus{models.OrderPreparing, models.OrderReady, models.OrderCompleted} {
		updated, err := UpdateOrderStatus(reg.VendorID, order.ID, to)
		if err != nil {
			t.Fatalf("transition to %s: %v", to, err)
		}
		if updated.Status != to {
			t.Fatalf("status = %q, want %q", updated.Status, to)
		}
	}

	// completed is terminal.
	if _, err := UpdateOrderStatus(reg.VendorID, order.ID, models.OrderCancelled); err == nil {
		t.Fatal("expected terminal order to reject further transitions")
	}
}

func TestUpdateOrderStatus_ScopedToOwningVendor(t *testing.T) {
	setupTestDB(t)
	reg := registerTestVendor(t)
	customerID := registerTestCustomer(t)
	itemID := addTestMenuItem(t, reg.VendorID, "Pani Puri", 30, true)

	order, err := PlaceOrder(reg.VendorID, customerID, PlaceOrderInput{
		Items: []OrderItemInput{{MenuItemID: itemID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	_, err = UpdateOrderStatus(uuid.New(), order.ID, models.OrderPreparing)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign vendor, got %v", err)
	}
}
