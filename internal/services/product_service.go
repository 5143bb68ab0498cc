package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/pkg/log"
	"samurai-nutrition/pkg/pagination"
)

// ProductService handles catalog reads and admin-side product management.
type ProductService struct {
	repo      repositories.ProductRepository
	adminLogs repositories.AdminLogRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, adminLogs repositories.AdminLogRepository) *ProductService {
	return &ProductService{repo: repo, adminLogs: adminLogs}
}

// ListActive returns the public catalog.
func (s *ProductService) ListActive() ([]models.Product, error) {
	return s.repo.ListActive()
}

// ListActiveByCategory returns the public catalog for one category.
func (s *ProductService) ListActiveByCategory(category string) ([]models.Product, error) {
	return s.repo.ListActiveByCategory(category)
}

// Categories returns the distinct product categories.
func (s *ProductService) Categories() ([]string, error) {
	return s.repo.Categories()
}

// GetByID retrieves a single product.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// AdminList returns a filtered page of products for the admin catalog.
func (s *ProductService) AdminList(p pagination.Params, filter repositories.ProductFilter) ([]models.Product, int64, error) {
	return s.repo.List(p, filter)
}

// Create inserts a product, generating a SKU when none was supplied, and
// records the mutation in the admin audit trail.
func (s *ProductService) Create(actorID, ip string, product *models.Product) error {
	if product.SKU == "" {
		product.SKU = generateSKU(product.Name)
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.audit(actorID, ip, "create_product", fmt.Sprintf("product created: %s", product.Name))
	return nil
}

// Update saves a product and records the mutation.
func (s *ProductService) Update(actorID, ip string, product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.audit(actorID, ip, "update_product", fmt.Sprintf("product updated: %s", product.Name))
	return nil
}

// Delete removes a product and records the mutation.
func (s *ProductService) Delete(actorID, ip, id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.audit(actorID, ip, "delete_product", fmt.Sprintf("product deleted: %s", product.Name))
	return nil
}

// AdjustStock applies a relative stock correction and records it.
func (s *ProductService) AdjustStock(actorID, ip, id string, delta int, reason string) (*models.Product, error) {
	before, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product, err := s.repo.AdjustStock(id, delta)
	if err != nil {
		return nil, err
	}
	s.audit(actorID, ip, "update_stock",
		fmt.Sprintf("stock %s: %d -> %d (%s)", product.Name, before.StockQuantity, product.StockQuantity, reason))
	return product, nil
}

// audit appends an admin-log entry; audit failures are logged but do not
// fail the mutation they describe.
func (s *ProductService) audit(actorID, ip, action, details string) {
	if s.adminLogs == nil {
		return
	}
	entry := &models.AdminLog{AdminID: actorID, Action: action, Details: details, IPAddress: ip}
	if err := s.adminLogs.Create(entry); err != nil {
		log.L.Warn("failed to write admin log", zap.String("action", action), zap.Error(err))
	}
}

// generateSKU derives a SKU from the product name plus a timestamp
// suffix, mirroring the store's historical SKU shape.
func generateSKU(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
		if b.Len() >= 10 {
			break
		}
	}
	ts := fmt.Sprintf("%d", time.Now().Unix())
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return b.String() + ts
}
