package services

import (
	"github.com/kunalgupta016/street-clean-eats/config"
	"github.com/kunalgupta016/street-clean-eats/models"

	"github.com/google/uuid"
)

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func ListReviews(vendorID uuid.UUID) ([]models.Review, error) {
	return selectMany[models.Review]("vendor_id", vendorID)
}

// CreateReview stores a customer review and recomputes the vendor's average
// rating. The rating column on VendorDetails is derived data; this is the
// only code path that writes it.
func CreateReview(vendorID, customerID uuid.UUID, in ReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ValidationErrors{{Field: "rating", Message: "must be between 1 and 5"}}
	}
	if _, err := GetVendorDetailsByID(vendorID); err != nil {
		return nil, err
	}

	review := models.Review{
		VendorID:   vendorID,
		CustomerID: customerID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	if err := insert(&review); err != nil {
		return nil, err
	}

	if err := recomputeAverageRating(vendorID); err != nil {
		return nil, err
	}
	return &review, nil
}

// ReplyToReview sets the vendor's public reply on one of their reviews.
func ReplyToReview(vendorID, reviewID uuid.UUID, reply string) (*models.Review, error) {
	var review models.Review
	if err := config.DB.Where("id = ? AND vendor_id = ?", reviewID, vendorID).First(&review).Error; err != nil {
		return nil, ErrNotFound
	}

	if err := updateFields[models.Review]("id", review.ID, map[string]any{"vendor_reply": reply}); err != nil {
		return nil, err
	}
	review.VendorReply = reply
	return &review, nil
}

func recomputeAverageRating(vendorID uuid.UUID) error {
	var avg float64
	err := config.DB.Model(&models.Review{}).
		Where("vendor_id = ?", vendorID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return err
	}
	return updateFields[models.VendorDetails]("id", vendorID, map[string]any{"average_rating": avg})
}
