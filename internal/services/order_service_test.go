package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/internal/services"
	"samurai-nutrition/pkg/pagination"
)

func seedOrderTestProducts(t *testing.T, products *repositories.MockProductRepository) (*models.Product, *models.Product) {
	t.Helper()
	whey := &models.Product{
		Name:          "Bushido Whey",
		SKU:           "BUSHIDOWHE-000001",
		Price:         49.99,
		StockQuantity: 10,
		IsActive:      true,
	}
	creatine := &models.Product{
		Name:          "Katana Creatine",
		SKU:           "KATANACREA-000002",
		Price:         24.50,
		StockQuantity: 2,
		IsActive:      true,
	}
	assert.NoError(t, products.Create(whey))
	assert.NoError(t, products.Create(creatine))
	return whey, creatine
}

func newOrderTestService(t *testing.T) (*services.OrderService, *models.Product, *models.Product) {
	t.Helper()
	products := repositories.NewMockProductRepository()
	orders := repositories.NewMockOrderRepository(products)
	whey, creatine := seedOrderTestProducts(t, products)
	return services.NewOrderService(orders, products, nil, nil, nil), whey, creatine
}

func TestOrderService_CreateOrder(t *testing.T) {
	svc, whey, creatine := newOrderTestService(t)

	order, err := svc.CreateOrder("u1", services.CreateOrderInput{
		Items: []services.OrderLineInput{
			{ProductID: whey.ID, Quantity: 2},
			{ProductID: creatine.ID, Quantity: 1},
		},
		ShippingAddress: "1 Dojo Lane",
		BillingAddress:  "1 Dojo Lane",
		PaymentMethod:   "card",
		ShippingCost:    5.00,
		TaxAmount:       2.50,
		DiscountAmount:  1.00,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Len(t, order.Items, 2)

	// Lines snapshot the product at order time.
	assert.Equal(t, "Bushido Whey", order.Items[0].ProductName)
	assert.Equal(t, "BUSHIDOWHE-000001", order.Items[0].ProductSKU)
	assert.Equal(t, 49.99, order.Items[0].UnitPrice)
	assert.InDelta(t, 99.98, order.Items[0].TotalPrice, 0.001)

	// Total = items + shipping + tax - discount.
	assert.InDelta(t, 99.98+24.50+5.00+2.50-1.00, order.TotalAmount, 0.001)

	// The birth history row is system-generated.
	assert.Len(t, order.StatusHistory, 1)
	assert.Equal(t, models.StatusPending, order.StatusHistory[0].Status)
	assert.Nil(t, order.StatusHistory[0].CreatedBy)
}

func TestOrderService_CreateOrderInsufficientStock(t *testing.T) {
	products := repositories.NewMockProductRepository()
	orders := repositories.NewMockOrderRepository(products)
	whey, creatine := seedOrderTestProducts(t, products)
	svc := services.NewOrderService(orders, products, nil, nil, nil)

	_, err := svc.CreateOrder("u1", services.CreateOrderInput{
		Items: []services.OrderLineInput{
			{ProductID: whey.ID, Quantity: 1},
			{ProductID: creatine.ID, Quantity: 3}, // only 2 in stock
		},
		ShippingAddress: "1 Dojo Lane",
		BillingAddress:  "1 Dojo Lane",
		PaymentMethod:   "card",
	})
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	// The failed order must not leak a reservation on either line.
	refreshed, err := products.GetByID(whey.ID)
	assert.NoError(t, err)
	assert.Equal(t, 10, refreshed.StockQuantity)
	refreshed, err = products.GetByID(creatine.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, refreshed.StockQuantity)
}

func TestOrderService_CreateOrderReservesStock(t *testing.T) {
	products := repositories.NewMockProductRepository()
	orders := repositories.NewMockOrderRepository(products)
	whey, _ := seedOrderTestProducts(t, products)
	svc := services.NewOrderService(orders, products, nil, nil, nil)

	_, err := svc.CreateOrder("u1", services.CreateOrderInput{
		Items:           []services.OrderLineInput{{ProductID: whey.ID, Quantity: 4}},
		ShippingAddress: "1 Dojo Lane",
		BillingAddress:  "1 Dojo Lane",
		PaymentMethod:   "card",
	})
	assert.NoError(t, err)

	refreshed, err := products.GetByID(whey.ID)
	assert.NoError(t, err)
	assert.Equal(t, 6, refreshed.StockQuantity)
}

func TestOrderService_ListRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newOrderTestService(t)

	_, _, err := svc.ListUserOrders("u1", pagination.Params{Page: 1, PerPage: 10}, "packed")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	_, _, err = svc.ListAllOrders(pagination.Params{Page: 1, PerPage: 10}, "packed")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestOrderService_GetOrderForOwnership(t *testing.T) {
	svc, whey, _ := newOrderTestService(t)

	order, err := svc.CreateOrder("u1", services.CreateOrderInput{
		Items:           []services.OrderLineInput{{ProductID: whey.ID, Quantity: 1}},
		ShippingAddress: "1 Dojo Lane",
		BillingAddress:  "1 Dojo Lane",
		PaymentMethod:   "card",
	})
	assert.NoError(t, err)

	owner := &models.User{ID: "u1", Role: models.RoleUser}
	stranger := &models.User{ID: "u2", Role: models.RoleUser}
	admin := &models.User{ID: "u3", Role: models.RoleAdmin}

	got, err := svc.GetOrderFor(owner, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = svc.GetOrderFor(stranger, order.ID)
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = svc.GetOrderFor(admin, order.ID)
	assert.NoError(t, err)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	svc, whey, _ := newOrderTestService(t)
	admin := &models.User{ID: "a1", Role: models.RoleAdmin}

	order, err := svc.CreateOrder("u1", services.CreateOrderInput{
		Items:           []services.OrderLineInput{{ProductID: whey.ID, Quantity: 1}},
		ShippingAddress: "1 Dojo Lane",
		BillingAddress:  "1 Dojo Lane",
		PaymentMethod:   "card",
	})
	assert.NoError(t, err)

	// Unknown status is rejected outright.
	_, _, err = svc.UpdateStatus(admin, order.ID, "packed", "", "127.0.0.1")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	// A real transition reports changed and appends history.
	updated, changed, err := svc.UpdateStatus(admin, order.ID, models.StatusProcessing, "picking", "127.0.0.1")
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.StatusProcessing, updated.Status)
	assert.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, &admin.ID, updated.StatusHistory[1].CreatedBy)

	// Setting the same status again is a no-op with no new history row.
	same, changed, err := svc.UpdateStatus(admin, order.ID, models.StatusProcessing, "again", "127.0.0.1")
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, same.StatusHistory, 2)
}
