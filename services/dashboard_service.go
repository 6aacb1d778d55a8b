package services

import (
	"github.com/kunalgupta016/street-clean-eats/config"
	"github.com/kunalgupta016/street-clean-eats/models"

	"github.com/google/uuid"
)

// DashboardOverview is the summary card on the vendor dashboard landing
// section. Counts are computed fresh on every request.
type DashboardOverview struct {
	StallName     string  `json:"stall_name"`
	AverageRating float64 `json:"average_rating"`
	HygieneRating float64 `json:"hygiene_rating"`
	MenuItems     int64   `json:"menu_items"`
	PendingOrders int64   `json:"pending_orders"`
	TotalOrders   int64   `json:"total_orders"`
	Reviews       int64   `json:"reviews"`
}

func GetDashboardOverview(vendorID uuid.UUID) (*DashboardOverview, error) {
	details, err := GetVendorDetailsByID(vendorID)
	if err != nil {
		return nil, err
	}

	overview := &DashboardOverview{
		StallName:     details.StallName,
		AverageRating: details.AverageRating,
		HygieneRating: details.HygieneRating,
	}

	if err := config.DB.Model(&models.MenuItem{}).Where("vendor_id = ?", vendorID).Count(&overview.MenuItems).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Order{}).Where("vendor_id = ? AND status = ?", vendorID, models.OrderPending).Count(&overview.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Order{}).Where("vendor_id = ?", vendorID).Count(&overview.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Review{}).Where("vendor_id = ?", vendorID).Count(&overview.Reviews).Error; err != nil {
		return nil, err
	}

	return overview, nil
}
