package services

import (
	"github.com/kunalgupta016/street-clean-eats/config"
	"github.com/kunalgupta016/street-clean-eats/models"
	"github.com/kunalgupta016/street-clean-eats/utils"

	"github.com/google/uuid"
)

// ChangePassword verifies the current password before setting a new one.
func ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return ValidationErrors{{Field: "new_password", Message: "must be at least 6 characters long"}}
	}

	user, err := selectOne[models.User]("id", userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return ValidationErrors{{Field: "current_password", Message: "current password is incorrect"}}
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return config.DB.Save(user).Error
}

// DisableAccount flags the identity as disabled. Actual deletion is a
// support process; profile rows are never removed by this layer.
func DisableAccount(userID uuid.UUID) error {
	user, err := selectOne[models.User]("id", userID)
	if err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(user).Error
}
