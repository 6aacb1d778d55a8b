package services

import (
	"fmt"

	"github.com/kunalgupta016/street-clean-eats/config"
	"github.com/kunalgupta016/street-clean-eats/metrics"
	"github.com/kunalgupta016/street-clean-eats/models"

	"github.com/google/uuid"
)

type OrderItemInput struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
}

type PlaceOrderInput struct {
	Items []OrderItemInput `json:"items"`
}

// PlaceOrder creates an order from the vendor's current menu. Prices are
// read server-side at order time; the client only sends item ids and
// quantities.
func PlaceOrder(vendorID, customerID uuid.UUID, in PlaceOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ValidationErrors{{Field: "items", Message: "at least one item is required"}}
	}

	order := models.Order{
		VendorID:   vendorID,
		CustomerID: customerID,
		Status:     models.OrderPending,
	}

	for _, li := range in.Items {
		if li.Quantity <= 0 {
			return nil, ValidationErrors{{Field: "items", Message: "quantity must be positive"}}
		}
		var item models.MenuItem
		err := config.DB.Where("id = ? AND vendor_id = ? AND is_available = ?", li.MenuItemID, vendorID, true).
			First(&item).Error
		if err != nil {
			return nil, ValidationErrors{{Field: "items", Message: "menu item not available: " + li.MenuItemID.String()}}
		}
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   li.Quantity,
			UnitPrice:  item.Price,
		})
		order.Total += item.Price * float64(li.Quantity)
	}

	if err := insert(&order); err != nil {
		return nil, err
	}

	metrics.OrdersPlacedTotal.Inc()
	Hub.Broadcast(vendorID, map[string]any{"event": "order_created", "order": order})
	return &order, nil
}

func ListOrders(vendorID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := config.DB.Preload("Items").Where("vendor_id = ?", vendorID).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus applies one state-machine transition on behalf of the
// vendor. Illegal transitions are rejected before any write.
func UpdateOrderStatus(vendorID, orderID uuid.UUID, to models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := config.DB.Where("id = ? AND vendor_id = ?", orderID, vendorID).First(&order).Error; err != nil {
		return nil, ErrNotFound
	}

	if !models.CanTransition(order.Status, to) {
		return nil, ValidationErrors{{
			Field:   "status",
			Message: fmt.Sprintf("cannot move order from %s to %s", order.Status, to),
		}}
	}

	if err := updateFields[models.Order]("id", order.ID, map[string]any{"status": to}); err != nil {
		return nil, err
	}
	order.Status = to

	Hub.Broadcast(vendorID, map[string]any{"event": "order_status_changed", "order_id": order.ID, "status": to})
	return &order, nil
}
