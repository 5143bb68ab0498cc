package services

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/pkg/log"
)

// BundleService manages curated product bundles.
type BundleService struct {
	repo      repositories.BundleRepository
	adminLogs repositories.AdminLogRepository
}

// NewBundleService creates a new BundleService.
func NewBundleService(repo repositories.BundleRepository, adminLogs repositories.AdminLogRepository) *BundleService {
	return &BundleService{repo: repo, adminLogs: adminLogs}
}

// List returns every bundle in curated order.
func (s *BundleService) List() ([]models.Bundle, error) {
	return s.repo.List()
}

// GetBySlug returns one bundle.
func (s *BundleService) GetBySlug(slug string) (*models.Bundle, error) {
	return s.repo.GetBySlug(slug)
}

// Create inserts a bundle, deriving the slug from the name when none was
// supplied. A slug collision fails with models.ErrDuplicate.
func (s *BundleService) Create(actorID, ip string, bundle *models.Bundle) error {
	if bundle.Slug == "" {
		bundle.Slug = Slugify(bundle.Name)
	} else {
		bundle.Slug = Slugify(bundle.Slug)
	}
	if bundle.Slug == "" {
		return fmt.Errorf("bundle needs a slug or a name")
	}

	if existing, err := s.repo.GetBySlug(bundle.Slug); err == nil && existing != nil {
		return fmt.Errorf("bundle slug '%s' already exists: %w", bundle.Slug, models.ErrDuplicate)
	} else if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}

	if err := s.repo.Create(bundle); err != nil {
		return err
	}
	s.auditBundle(actorID, ip, "create_bundle", bundle.Slug)
	return nil
}

// Update saves a bundle. The slug is immutable once created.
func (s *BundleService) Update(actorID, ip string, bundle *models.Bundle) error {
	if err := s.repo.Update(bundle); err != nil {
		return err
	}
	s.auditBundle(actorID, ip, "update_bundle", bundle.Slug)
	return nil
}

// Delete removes a bundle by slug.
func (s *BundleService) Delete(actorID, ip, slug string) error {
	if err := s.repo.DeleteBySlug(slug); err != nil {
		return err
	}
	s.auditBundle(actorID, ip, "delete_bundle", slug)
	return nil
}

func (s *BundleService) auditBundle(actorID, ip, action, slug string) {
	if s.adminLogs == nil {
		return
	}
	entry := &models.AdminLog{
		AdminID:   actorID,
		Action:    action,
		Details:   fmt.Sprintf("bundle: %s", slug),
		IPAddress: ip,
	}
	if err := s.adminLogs.Create(entry); err != nil {
		log.L.Warn("failed to write admin log", zap.String("action", action), zap.Error(err))
	}
}

// Slugify lowercases a name and collapses whitespace into hyphens.
func Slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "-")
}
