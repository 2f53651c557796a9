package gallery

import (
	"context"
	"errors"

	"icoltex-hub/feature/catalog/models"

	"gorm.io/gorm"
)

// Store persists product-line galleries keyed by (category, class).
type Store struct {
	db *gorm.DB
}

// NewStore creates a gallery store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindByLine returns the gallery for a product line, or (nil, nil) when none
// exists yet.
func (s *Store) FindByLine(ctx context.Context, category, productClass string) (*models.ProductLineGallery, error) {
	var gallery models.ProductLineGallery
	err := s.db.WithContext(ctx).
		Where("category = ? AND product_class = ?", category, productClass).
		First(&gallery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

// Save inserts or replaces a gallery row.
func (s *Store) Save(ctx context.Context, gallery *models.ProductLineGallery) error {
	return s.db.WithContext(ctx).Save(gallery).Error
}

// Delete removes a product line's gallery.
func (s *Store) Delete(ctx context.Context, category, productClass string) error {
	return s.db.WithContext(ctx).
		Where("category = ? AND product_class = ?", category, productClass).
		Delete(&models.ProductLineGallery{}).Error
}

// List returns all galleries ordered by line.
func (s *Store) List(ctx context.Context) ([]models.ProductLineGallery, error) {
	var galleries []models.ProductLineGallery
	err := s.db.WithContext(ctx).
		Order("category, product_class").
		Find(&galleries).Error
	if err != nil {
		return nil, err
	}
	return galleries, nil
}
