package services

import (
	"errors"

	"github.com/kunalgupta016/street-clean-eats/config"

	"gorm.io/gorm"
)

// Typed accessors over the gorm collections. Every read goes back to the
// database; nothing is cached between requests.

func selectOne[T any](column string, value any) (*T, error) {
	var rec T
	err := config.DB.Where(column+" = ?", value).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func selectMany[T any](column string, value any) ([]T, error) {
	var recs []T
	if err := config.DB.Where(column+" = ?", value).Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func insert[T any](rec *T) error {
	err := config.DB.Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

// updateFields patches a subset of columns on the row matching column=value.
// Callers decide which fields are mutable; immutable columns (user_type,
// derived ratings) never appear in the patch maps they build.
func updateFields[T any](column string, value any, patch map[string]any) error {
	var rec T
	res := config.DB.Model(&rec).Where(column+" = ?", value).Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
