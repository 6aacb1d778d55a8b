package middlewares

import (
	"errors"
	"net/http"

	"github.com/kunalgupta016/street-clean-eats/models"
	"github.com/kunalgupta016/street-clean-eats/services"

	"github.com/gin-gonic/gin"
)

const (
	CtxProfile       = "profile"
	CtxVendorDetails = "vendorDetails"
)

// VendorGate loads the caller's profile and rejects anyone who is not a
// vendor. VendorDetails may legitimately be absent (a partially-initialized
// registration); sections have to handle that state, so it is attached as
// nil rather than treated as an error.
func VendorGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)

		profile, err := services.GetProfile(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		if profile.UserType != models.UserTypeVendor {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "vendor account required"})
			return
		}
		c.Set(CtxProfile, profile)

		details, err := services.GetVendorDetails(userID)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load vendor details"})
			return
		}
		if details != nil {
			c.Set(CtxVendorDetails, details)
		}

		c.Next()
	}
}

// Profile returns the profile attached by VendorGate.
func Profile(c *gin.Context) *models.Profile {
	if v, ok := c.Get(CtxProfile); ok {
		if p, ok := v.(*models.Profile); ok {
			return p
		}
	}
	return nil
}

// VendorDetails returns the vendor details attached by VendorGate, or nil
// when the vendor's registration never completed that write.
func VendorDetails(c *gin.Context) *models.VendorDetails {
	if v, ok := c.Get(CtxVendorDetails); ok {
		if d, ok := v.(*models.VendorDetails); ok {
			return d
		}
	}
	return nil
}

// RequireVendorDetails responds 409 for sections that cannot work without
// the vendor details row.
func RequireVendorDetails(c *gin.Context) *models.VendorDetails {
	details := VendorDetails(c)
	if details == nil {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "vendor profile incomplete: vendor details missing"})
	}
	return details
}
