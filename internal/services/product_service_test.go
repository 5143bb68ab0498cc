package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/internal/services"
)

func TestProductService_CreateGeneratesSKU(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewProductService(repo, nil)

	product := &models.Product{Name: "Bushido Whey Vanilla", Price: 49.99, StockQuantity: 10, IsActive: true}
	assert.NoError(t, svc.Create("a1", "127.0.0.1", product))
	assert.NotEmpty(t, product.SKU)
	assert.Contains(t, product.SKU, "BUSHIDOWHE")

	// A supplied SKU is kept as-is.
	custom := &models.Product{Name: "Katana Creatine", SKU: "CUSTOM-1", Price: 24.50, IsActive: true}
	assert.NoError(t, svc.Create("a1", "127.0.0.1", custom))
	assert.Equal(t, "CUSTOM-1", custom.SKU)
}

func TestProductService_ListActiveHidesInactive(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewProductService(repo, nil)

	assert.NoError(t, repo.Create(&models.Product{Name: "Visible", Price: 10, IsActive: true, Category: "protein"}))
	assert.NoError(t, repo.Create(&models.Product{Name: "Hidden", Price: 10, IsActive: false, Category: "protein"}))

	active, err := svc.ListActive()
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "Visible", active[0].Name)

	byCategory, err := svc.ListActiveByCategory("protein")
	assert.NoError(t, err)
	assert.Len(t, byCategory, 1)
}

func TestProductService_AdjustStock(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewProductService(repo, nil)

	product := &models.Product{Name: "Ronin Ribose", Price: 15, StockQuantity: 5, IsActive: true}
	assert.NoError(t, repo.Create(product))

	updated, err := svc.AdjustStock("a1", "127.0.0.1", product.ID, 20, "restock")
	assert.NoError(t, err)
	assert.Equal(t, 25, updated.StockQuantity)

	updated, err = svc.AdjustStock("a1", "127.0.0.1", product.ID, -5, "damaged pallet")
	assert.NoError(t, err)
	assert.Equal(t, 20, updated.StockQuantity)

	// Adjustments can never take stock below zero.
	_, err = svc.AdjustStock("a1", "127.0.0.1", product.ID, -100, "oops")
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	refreshed, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 20, refreshed.StockQuantity)
}

func TestProductService_DeleteMissing(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewProductService(repo, nil)

	err := svc.Delete("a1", "127.0.0.1", "no-such-id")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
