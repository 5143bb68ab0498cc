package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"samurai-nutrition/internal/models"
)

func TestRoleCapabilities(t *testing.T) {
	// Regular users only see their own orders.
	assert.True(t, models.RoleUser.Can(models.CapViewOwnOrders))
	assert.False(t, models.RoleUser.Can(models.CapViewAllOrders))
	assert.False(t, models.RoleUser.Can(models.CapUpdateOrderStatus))
	assert.False(t, models.RoleUser.Can(models.CapManageProducts))
	assert.False(t, models.RoleUser.Can(models.CapManageUsers))
	assert.False(t, models.RoleUser.Can(models.CapViewDashboard))
	assert.False(t, models.RoleUser.Can(models.CapViewAdminLogs))

	// Admins hold every capability.
	for _, c := range []models.Capability{
		models.CapViewOwnOrders,
		models.CapViewAllOrders,
		models.CapUpdateOrderStatus,
		models.CapManageProducts,
		models.CapManageUsers,
		models.CapViewDashboard,
		models.CapViewAdminLogs,
	} {
		assert.True(t, models.RoleAdmin.Can(c), "admin should have %s", c)
	}

	// Unknown roles hold nothing.
	assert.False(t, models.Role("superuser").Can(models.CapViewOwnOrders))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, models.RoleUser.Valid())
	assert.True(t, models.RoleAdmin.Valid())
	assert.False(t, models.Role("superuser").Valid())
	assert.False(t, models.Role("").Valid())
}

func TestOrderStatusValid(t *testing.T) {
	for _, status := range models.OrderStatuses {
		assert.True(t, status.Valid(), "%s should be valid", status)
	}
	assert.False(t, models.OrderStatus("packed").Valid())
	assert.False(t, models.OrderStatus("").Valid())
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, models.StatusPending.Terminal())
	assert.False(t, models.StatusProcessing.Terminal())
	assert.False(t, models.StatusShipped.Terminal())
	assert.True(t, models.StatusDelivered.Terminal())
	assert.True(t, models.StatusCancelled.Terminal())
	assert.True(t, models.StatusRefunded.Terminal())
}

func TestUserCanViewOrder(t *testing.T) {
	owner := &models.User{ID: "u1", Role: models.RoleUser}
	stranger := &models.User{ID: "u2", Role: models.RoleUser}
	admin := &models.User{ID: "u3", Role: models.RoleAdmin}
	order := &models.Order{ID: "o1", UserID: "u1"}

	assert.True(t, owner.CanViewOrder(order))
	assert.False(t, stranger.CanViewOrder(order))
	assert.True(t, admin.CanViewOrder(order))
}

func TestProductStockHelpers(t *testing.T) {
	p := models.Product{StockQuantity: 5, LowStockThreshold: 10, IsActive: true}
	assert.True(t, p.InStock(5))
	assert.False(t, p.InStock(6))
	assert.True(t, p.LowStock())

	p.StockQuantity = 50
	assert.False(t, p.LowStock())

	p.IsActive = false
	assert.False(t, p.InStock(1))
}
