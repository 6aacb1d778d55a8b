package models

import "testing"

func TestCanTransition(t *testing.T) {
	legal := []struct{ from, to OrderStatus }{
		{OrderPending, OrderPreparing},
		{OrderPending, OrderCancelled},
		{OrderPreparing, OrderReady},
		{OrderPreparing, OrderCancelled},
		{OrderReady, OrderCompleted},
	}
	for _, tc := range legal {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be legal", tc.from, tc.to)
		}
	}

	illegal := []struct{ from, to OrderStatus }{
		{OrderPending, OrderReady},
		{OrderPending, OrderCompleted},
		{OrderReady, OrderCancelled},
		{OrderCompleted, OrderPreparing},
		{OrderCancelled, OrderPending},
		{OrderPreparing, OrderPreparing},
	}
	for _, tc := range illegal {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestEnumValidation(t *testing.T) {
	for _, c := range CuisineTypes {
		if !c.Valid() {
			t.Errorf("listed cuisine %q reported invalid", c)
		}
	}
	if CuisineType("fusion").Valid() {
		t.Error("unknown cuisine accepted")
	}
	if OperationType("food_truck").Valid() {
		t.Error("unknown operation type accepted")
	}
	if !OperationMobileCart.Valid() {
		t.Error("mobile_cart rejected")
	}
	if UserType("admin").Valid() {
		t.Error("unknown user type accepted")
	}
}
