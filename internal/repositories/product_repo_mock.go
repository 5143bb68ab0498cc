package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/pkg/pagination"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{products: make(map[string]models.Product)}
}

// ListActive returns all active products.
func (r *MockProductRepository) ListActive() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.IsActive {
			list = append(list, p)
		}
	}
	return list, nil
}

// ListActiveByCategory returns active products in one category.
func (r *MockProductRepository) ListActiveByCategory(category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.Product
	for _, p := range r.products {
		if p.IsActive && p.Category == category {
			list = append(list, p)
		}
	}
	return list, nil
}

// Categories returns the distinct non-empty categories.
func (r *MockProductRepository) Categories() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range r.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
	}
	return &product, nil
}

// List returns a filtered page of products.
func (r *MockProductRepository) List(p pagination.Params, filter ProductFilter) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for _, prod := range r.products {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(prod.Name), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(prod.SKU), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Category != "" && prod.Category != filter.Category {
			continue
		}
		if filter.IsActive != nil && prod.IsActive != *filter.IsActive {
			continue
		}
		if filter.LowStock && !prod.LowStock() {
			continue
		}
		matched = append(matched, prod)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := p.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + p.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, models.ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// Reserve decrements stock if the product is active and holds enough units.
func (r *MockProductRepository) Reserve(id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reserveLocked(id, quantity)
}

func (r *MockProductRepository) reserveLocked(id string, quantity int) error {
	product, ok := r.products[id]
	if !ok || !product.IsActive || product.StockQuantity < quantity {
		return fmt.Errorf("product %s: %w", id, models.ErrInsufficientStock)
	}
	product.StockQuantity -= quantity
	r.products[id] = product
	return nil
}

func (r *MockProductRepository) releaseLocked(id string, quantity int) {
	if product, ok := r.products[id]; ok {
		product.StockQuantity += quantity
		r.products[id] = product
	}
}

// AdjustStock applies a relative stock change.
func (r *MockProductRepository) AdjustStock(id string, delta int) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
	}
	if product.StockQuantity+delta < 0 {
		return nil, fmt.Errorf("stock for product %s cannot go negative: %w", id, models.ErrInsufficientStock)
	}
	product.StockQuantity += delta
	r.products[id] = product
	return &product, nil
}
