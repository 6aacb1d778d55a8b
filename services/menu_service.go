package services

import (
	"github.com/kunalgupta016/street-clean-eats/config"
	"github.com/kunalgupta016/street-clean-eats/models"

	"github.com/google/uuid"
)

type MenuItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsVeg       *bool   `json:"is_veg"`
	IsAvailable *bool   `json:"is_available"`
	ImageURL    string  `json:"image_url"`
}

func (in MenuItemInput) validateNew() ValidationErrors {
	var errs ValidationErrors
	errs = required(errs, "name", in.Name)
	if in.Price <= 0 {
		errs = append(errs, FieldError{Field: "price", Message: "must be greater than zero"})
	}
	return errs
}

func ListMenu(vendorID uuid.UUID) ([]models.MenuItem, error) {
	return selectMany[models.MenuItem]("vendor_id", vendorID)
}

// ListAvailableMenu is the public read path: only items currently for sale.
func ListAvailableMenu(vendorID uuid.UUID) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := config.DB.Where("vendor_id = ? AND is_available = ?", vendorID, true).
		Order("category, name").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func CreateMenuItem(vendorID uuid.UUID, in MenuItemInput) (*models.MenuItem, error) {
	if errs := in.validateNew(); len(errs) > 0 {
		return nil, errs
	}

	item := models.MenuItem{
		VendorID:    vendorID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		IsAvailable: true,
		ImageURL:    in.ImageURL,
	}
	if in.IsVeg != nil {
		item.IsVeg = *in.IsVeg
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if err := insert(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func UpdateMenuItem(vendorID, itemID uuid.UUID, in MenuItemInput) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := config.DB.Where("id = ? AND vendor_id = ?", itemID, vendorID).First(&item).Error; err != nil {
		return nil, ErrNotFound
	}

	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Description != "" {
		item.Description = in.Description
	}
	if in.Price > 0 {
		item.Price = in.Price
	}
	if in.Category != "" {
		item.Category = in.Category
	}
	if in.IsVeg != nil {
		item.IsVeg = *in.IsVeg
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.ImageURL != "" {
		item.ImageURL = in.ImageURL
	}

	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func DeleteMenuItem(vendorID, itemID uuid.UUID) error {
	res := config.DB.Where("id = ? AND vendor_id = ?", itemID, vendorID).Delete(&models.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
