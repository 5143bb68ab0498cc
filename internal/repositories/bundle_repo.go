package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"samurai-nutrition/internal/models"
)

// BundleRepository defines the interface for product bundles. Bundles
// are addressed by slug, the public identifier the storefront uses.
type BundleRepository interface {
	List() ([]models.Bundle, error)
	GetBySlug(slug string) (*models.Bundle, error)
	Create(bundle *models.Bundle) error
	Update(bundle *models.Bundle) error
	DeleteBySlug(slug string) error
}

// GORMBundleRepository is a GORM implementation of BundleRepository.
type GORMBundleRepository struct {
	db *gorm.DB
}

// NewGORMBundleRepository creates a new instance of GORMBundleRepository.
func NewGORMBundleRepository(db *gorm.DB) *GORMBundleRepository {
	return &GORMBundleRepository{db: db}
}

// List returns every bundle, oldest first so the storefront keeps its
// curated ordering.
func (r *GORMBundleRepository) List() ([]models.Bundle, error) {
	var bundles []models.Bundle
	if err := r.db.Order("created_at ASC").Find(&bundles).Error; err != nil {
		return nil, fmt.Errorf("failed to list bundles: %w", err)
	}
	return bundles, nil
}

// GetBySlug returns one bundle by its public slug.
func (r *GORMBundleRepository) GetBySlug(slug string) (*models.Bundle, error) {
	var bundle models.Bundle
	err := r.db.First(&bundle, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bundle %s: %w", slug, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bundle %s: %w", slug, err)
	}
	return &bundle, nil
}

// Create inserts a bundle.
func (r *GORMBundleRepository) Create(bundle *models.Bundle) error {
	if bundle.ID == "" {
		bundle.ID = uuid.New().String()
	}
	if err := r.db.Create(bundle).Error; err != nil {
		return fmt.Errorf("failed to create bundle %s: %w", bundle.Slug, err)
	}
	return nil
}

// Update saves a bundle.
func (r *GORMBundleRepository) Update(bundle *models.Bundle) error {
	res := r.db.Save(bundle)
	if res.Error != nil {
		return fmt.Errorf("failed to update bundle %s: %w", bundle.Slug, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("bundle %s: %w", bundle.Slug, models.ErrNotFound)
	}
	return nil
}

// DeleteBySlug removes a bundle.
func (r *GORMBundleRepository) DeleteBySlug(slug string) error {
	res := r.db.Delete(&models.Bundle{}, "slug = ?", slug)
	if res.Error != nil {
		return fmt.Errorf("failed to delete bundle %s: %w", slug, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("bundle %s: %w", slug, models.ErrNotFound)
	}
	return nil
}
