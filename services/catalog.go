package services

import (
	"realestate-backend/models"

	"gorm.io/gorm"
)

// Fields a catalog update may never touch directly.
var protectedCatalogKeys = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"deleted_at": true,
}

// CatalogService is the shared CRUD layer behind the four reference
// catalogs (property types, districts, amenities, features). They share the
// same lifecycle, so one generic service covers all of them.
type CatalogService[T any] struct {
	db *gorm.DB
}

func NewCatalogService[T any](db *gorm.DB) *CatalogService[T] {
	return &CatalogService[T]{db: db}
}

// List returns every record ordered for the admin table; includeTrashed adds
// soft-deleted rows.
func (s *CatalogService[T]) List(includeTrashed bool) ([]T, error) {
	query := s.db
	if includeTrashed {
		query = query.Unscoped()
	}
	var items []T
	err := query.Scopes(models.Ordered).Find(&items).Error
	return items, err
}

// Options returns the active records only, for public filter dropdowns.
func (s *CatalogService[T]) Options() ([]T, error) {
	var items []T
	err := s.db.Scopes(models.ActiveRef, models.Ordered).Find(&items).Error
	return items, err
}

func (s *CatalogService[T]) Get(id uint) (*T, error) {
	var item T
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService[T]) Create(item *T) error {
	if err := s.db.Create(item).Error; err != nil {
		if isDuplicateKey(err) {
			return &ValidationError{Fields: map[string]string{"slug": "already in use"}}
		}
		return err
	}
	return nil
}

// Update applies a partial change set, dropping keys a client must not set.
func (s *CatalogService[T]) Update(id uint, changes map[string]any) (*T, error) {
	var item T
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, err
	}

	filtered := make(map[string]any, len(changes))
	for key, value := range changes {
		if !protectedCatalogKeys[key] {
			filtered[key] = value
		}
	}
	if len(filtered) == 0 {
		return &item, nil
	}

	if err := s.db.Model(&item).Updates(filtered).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, &ValidationError{Fields: map[string]string{"slug": "already in use"}}
		}
		return nil, err
	}
	return s.Get(id)
}

func (s *CatalogService[T]) Delete(id uint) error {
	var item T
	result := s.db.Delete(&item, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *CatalogService[T]) Restore(id uint) error {
	var item T
	result := s.db.Unscoped().Model(&item).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BulkSetActive toggles visibility per record; failures are collected, not
// fatal.
func (s *CatalogService[T]) BulkSetActive(ids []uint, active bool) BulkResult {
	result := newBulkResult(len(ids))
	var item T
	for _, id := range ids {
		res := s.db.Model(&item).Where("id = ?", id).Update("is_active", active)
		switch {
		case res.Error != nil:
			result.Failed = append(result.Failed, BulkFailure{ID: id, Reason: "storage error"})
		case res.RowsAffected == 0:
			result.Failed = append(result.Failed, BulkFailure{ID: id, Reason: "not found"})
		default:
			result.Updated = append(result.Updated, id)
		}
	}
	return result
}
