package models

// CuisineType is the closed set of cuisines a vendor can register under and
// a customer can mark as a favorite.
type CuisineType string

const (
	CuisineIndian      CuisineType = "indian"
	CuisineChinese     CuisineType = "chinese"
	CuisineItalian     CuisineType = "italian"
	CuisineFastFood    CuisineType = "fast_food"
	CuisineDesserts    CuisineType = "desserts"
	CuisineSouthIndian CuisineType = "south_indian"
	CuisineNorthIndian CuisineType = "north_indian"
	CuisineRegional    CuisineType = "regional"
	CuisineHealthy     CuisineType = "healthy"
	CuisineOther       CuisineType = "other"
)

// OperationType describes how a vendor operates their stall.
type OperationType string

const (
	OperationPermanentStall OperationType = "permanent_stall"
	OperationMobileCart     OperationType = "mobile_cart"
	OperationPopupEvents    OperationType = "popup_events"
)

// UserType is set once at registration and never changes.
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeVendor   UserType = "vendor"
)

// OrderStatus values match the dashboard's order lifecycle.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// CuisineTypes lists the permitted values in form-population order.
var CuisineTypes = []CuisineType{
	CuisineIndian,
	CuisineChinese,
	CuisineItalian,
	CuisineFastFood,
	CuisineDesserts,
	CuisineSouthIndian,
	CuisineNorthIndian,
	CuisineRegional,
	CuisineHealthy,
	CuisineOther,
}

var OperationTypes = []OperationType{
	OperationPermanentStall,
	OperationMobileCart,
	OperationPopupEvents,
}

var UserTypes = []UserType{UserTypeCustomer, UserTypeVendor}

func (c CuisineType) Valid() bool {
	for _, v := range CuisineTypes {
		if c == v {
			return true
		}
	}
	return false
}

func (o OperationType) Valid() bool {
	for _, v := range OperationTypes {
		if o == v {
			return true
		}
	}
	return false
}

func (u UserType) Valid() bool {
	return u == UserTypeCustomer || u == UserTypeVendor
}
