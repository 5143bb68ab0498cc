package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"samurai-nutrition/internal/handlers"
	"samurai-nutrition/internal/middleware"
	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/internal/services"
)

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	products repositories.ProductRepository
}

// setupApp builds a full Fiber app over an in-memory SQLite database,
// wired exactly like main, minus the message broker.
func setupApp(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.AdminLog{},
		&models.Cart{},
		&models.CartItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
		&models.Bundle{},
		&models.UserHistory{},
	))

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	adminLogRepo := repositories.NewGORMAdminLogRepository(db)
	statsRepo := repositories.NewGORMStatsRepository(db)
	bundleRepo := repositories.NewGORMBundleRepository(db)
	historyRepo := repositories.NewGORMUserHistoryRepository(db)

	authService := services.NewAuthService(userRepo, "test_jwt_secret")
	productService := services.NewProductService(productRepo, adminLogRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, statsRepo, adminLogRepo, nil)
	cartService := services.NewCartService(cartRepo, productRepo)
	adminService := services.NewAdminService(userRepo, statsRepo, adminLogRepo)
	bundleService := services.NewBundleService(bundleRepo, adminLogRepo)
	historyService := services.NewHistoryService(historyRepo)

	authHandler := handlers.NewAuthHandler(authService, historyService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService, historyService)
	cartHandler := handlers.NewCartHandler(cartService)
	adminHandler := handlers.NewAdminHandler(adminService, productService, orderService)
	bundleHandler := handlers.NewBundleHandler(bundleService)
	historyHandler := handlers.NewUserHistoryHandler(historyService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)
	bundleHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)
	orderHandler.RegisterRoutes(protected)
	cartHandler.RegisterRoutes(protected)
	adminHandler.RegisterRoutes(protected)
	bundleHandler.RegisterAdminRoutes(protected)
	historyHandler.RegisterRoutes(protected)

	// Seed the admin account and a couple of catalog products.
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, userRepo.Create(&models.User{
		Email:        "admin@samurainutrition.com",
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "User",
		Role:         models.RoleAdmin,
		IsActive:     true,
	}))
	require.NoError(t, productRepo.Create(&models.Product{
		Name: "Bushido Whey", SKU: "BW-1", Price: 49.99,
		StockQuantity: 10, IsActive: true, Category: "protein",
	}))
	require.NoError(t, productRepo.Create(&models.Product{
		Name: "Katana Creatine", SKU: "KC-1", Price: 24.50,
		StockQuantity: 2, IsActive: true, Category: "performance",
	}))

	return &testEnv{app: app, db: db, products: productRepo}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

// register creates a user through the API and returns their token.
func (e *testEnv) register(t *testing.T, email string) string {
	t.Helper()
	resp, body := e.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":      email,
		"password":   "password123",
		"first_name": "Test",
		"last_name":  "User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// loginAdmin signs in the seeded admin and returns their token.
func (e *testEnv) loginAdmin(t *testing.T) string {
	t.Helper()
	resp, body := e.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@samurainutrition.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (e *testEnv) productID(t *testing.T, sku string) string {
	t.Helper()
	var product models.Product
	require.NoError(t, e.db.First(&product, "sku = ?", sku).Error)
	return product.ID
}

func TestRegisterLoginAndProfile(t *testing.T) {
	env := setupApp(t)
	token := env.register(t, "ronin@example.com")

	// Registering the same email again conflicts.
	resp, _ := env.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": "ronin@example.com", "password": "password123",
		"first_name": "Test", "last_name": "User",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The token works against protected routes.
	resp, body := env.request(t, http.MethodPost, "/api/v1/auth/verify-token", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["valid"])

	// Without a token the route is unauthorized.
	resp, _ = env.request(t, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Profile updates round-trip.
	resp, body = env.request(t, http.MethodPut, "/api/v1/profile", token, map[string]string{
		"first_name": "Musashi",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Musashi", user["first_name"])
}

func TestCatalogIsPublic(t *testing.T) {
	env := setupApp(t)

	resp, body := env.request(t, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["products"], 2)

	resp, body = env.request(t, http.MethodGet, "/api/v1/products/categories", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["categories"], 2)

	resp, body = env.request(t, http.MethodGet, "/api/v1/products/category/protein", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["products"], 1)

	resp, _ = env.request(t, http.MethodGet, "/api/v1/products/no-such-id", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartAndWishlistFlow(t *testing.T) {
	env := setupApp(t)
	token := env.register(t, "shopper@example.com")
	productID := env.productID(t, "BW-1")

	resp, body := env.request(t, http.MethodPost, "/api/v1/cart/add/"+productID, token, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	cart := body["cart"].(map[string]interface{})
	assert.Len(t, cart["items"], 1)

	// Adding again increments the quantity instead of duplicating the line.
	resp, body = env.request(t, http.MethodPost, "/api/v1/cart/add/"+productID, token, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	cart = body["cart"].(map[string]interface{})
	items := cart["items"].([]interface{})
	require.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0].(map[string]interface{})["quantity"])

	resp, _ = env.request(t, http.MethodDelete, "/api/v1/cart/empty", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Wishlist accepts a product once and conflicts on the second add.
	resp, _ = env.request(t, http.MethodPost, "/api/v1/wishlist/add/"+productID, token, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = env.request(t, http.MethodPost, "/api/v1/wishlist/add/"+productID, token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = env.request(t, http.MethodGet, "/api/v1/wishlist", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	wishlist := body["wishlist"].(map[string]interface{})
	assert.Len(t, wishlist["items"], 1)
}

func placeOrder(t *testing.T, env *testEnv, token, productID string, quantity int) map[string]interface{} {
	t.Helper()
	resp, body := env.request(t, http.MethodPost, "/api/v1/orders", token, map[string]interface{}{
		"items":            []map[string]interface{}{{"product_id": productID, "quantity": quantity}},
		"shipping_address": "1 Dojo Lane",
		"billing_address":  "1 Dojo Lane",
		"payment_method":   "card",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)
	return body["order"].(map[string]interface{})
}

func TestOrderPlacement(t *testing.T) {
	env := setupApp(t)
	token := env.register(t, "buyer@example.com")
	productID := env.productID(t, "BW-1")

	order := placeOrder(t, env, token, productID, 3)
	assert.Equal(t, "pending", order["status"])
	assert.NotEmpty(t, order["order_number"])
	assert.Len(t, order["status_history"], 1)

	// Stock was reserved atomically with the order.
	product, err := env.products.GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, 7, product.StockQuantity)

	// Over-ordering the scarce product fails without touching stock.
	scarceID := env.productID(t, "KC-1")
	resp, _ := env.request(t, http.MethodPost, "/api/v1/orders", token, map[string]interface{}{
		"items":            []map[string]interface{}{{"product_id": scarceID, "quantity": 5}},
		"shipping_address": "1 Dojo Lane",
		"billing_address":  "1 Dojo Lane",
		"payment_method":   "card",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	scarce, err := env.products.GetByID(scarceID)
	require.NoError(t, err)
	assert.Equal(t, 2, scarce.StockQuantity)

	// A missing shipping address fails validation.
	resp, _ = env.request(t, http.MethodPost, "/api/v1/orders", token, map[string]interface{}{
		"items":          []map[string]interface{}{{"product_id": productID, "quantity": 1}},
		"payment_method": "card",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrderVisibility(t *testing.T) {
	env := setupApp(t)
	ownerToken := env.register(t, "owner@example.com")
	strangerToken := env.register(t, "stranger@example.com")
	adminToken := env.loginAdmin(t)
	productID := env.productID(t, "BW-1")

	order := placeOrder(t, env, ownerToken, productID, 1)
	orderID := order["id"].(string)

	resp, _ := env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The owner's order list carries the pagination envelope.
	resp, body := env.request(t, http.MethodGet, "/api/v1/orders?page=1&per_page=5", ownerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	meta := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 1, meta["total"])
	assert.EqualValues(t, false, meta["has_next"])

	// An unknown status filter is rejected, not silently ignored.
	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders?status=packed", ownerToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminOrderStatusTransitions(t *testing.T) {
	env := setupApp(t)
	buyerToken := env.register(t, "buyer@example.com")
	adminToken := env.loginAdmin(t)
	productID := env.productID(t, "BW-1")

	order := placeOrder(t, env, buyerToken, productID, 1)
	orderID := order["id"].(string)

	// Regular users may not transition orders.
	resp, _ := env.request(t, http.MethodPut, "/api/v1/admin/orders/"+orderID+"/status", buyerToken, map[string]string{
		"status": "processing",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// A real transition appends a history row attributed to the admin.
	resp, body := env.request(t, http.MethodPut, "/api/v1/admin/orders/"+orderID+"/status", adminToken, map[string]string{
		"status": "processing", "comment": "picking",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["changed"])
	updated := body["order"].(map[string]interface{})
	history := updated["status_history"].([]interface{})
	require.Len(t, history, 2)
	latest := history[1].(map[string]interface{})
	assert.Equal(t, "processing", latest["status"])
	assert.NotNil(t, latest["created_by"])

	// The admin detail view carries the full order.
	resp, body = env.request(t, http.MethodGet, "/api/v1/admin/orders/"+orderID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	detail := body["order"].(map[string]interface{})
	assert.Len(t, detail["items"], 1)

	// Re-sending the same status is a no-op.
	resp, body = env.request(t, http.MethodPut, "/api/v1/admin/orders/"+orderID+"/status", adminToken, map[string]string{
		"status": "processing",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["changed"])

	// Unknown statuses are rejected.
	resp, _ = env.request(t, http.MethodPut, "/api/v1/admin/orders/"+orderID+"/status", adminToken, map[string]string{
		"status": "packed",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	env := setupApp(t)
	userToken := env.register(t, "plain@example.com")
	adminToken := env.loginAdmin(t)

	for _, path := range []string{
		"/api/v1/admin/dashboard/stats",
		"/api/v1/admin/users",
		"/api/v1/admin/products",
		"/api/v1/admin/orders",
		"/api/v1/admin/logs",
	} {
		resp, _ := env.request(t, http.MethodGet, path, userToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)

		resp, _ = env.request(t, http.MethodGet, path, adminToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestAdminProductManagement(t *testing.T) {
	env := setupApp(t)
	adminToken := env.loginAdmin(t)

	resp, body := env.request(t, http.MethodPost, "/api/v1/admin/products", adminToken, map[string]interface{}{
		"name": "Shogun Shaker", "price": 9.99, "stock_quantity": 50, "is_active": true,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := body["product"].(map[string]interface{})
	assert.NotEmpty(t, created["sku"], "SKU should be generated when omitted")
	productID := created["id"].(string)

	// Stock adjustments are relative and audited.
	resp, body = env.request(t, http.MethodPut, "/api/v1/admin/products/"+productID+"/stock", adminToken, map[string]interface{}{
		"delta": -10, "reason": "damaged pallet",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	adjusted := body["product"].(map[string]interface{})
	assert.EqualValues(t, 40, adjusted["stock_quantity"])

	resp, body = env.request(t, http.MethodGet, "/api/v1/admin/logs", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	logs := body["logs"].([]interface{})
	assert.NotEmpty(t, logs)

	resp, _ = env.request(t, http.MethodDelete, "/api/v1/admin/products/"+productID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = env.request(t, http.MethodGet, "/api/v1/products/"+productID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminDashboard(t *testing.T) {
	env := setupApp(t)
	buyerToken := env.register(t, "buyer@example.com")
	adminToken := env.loginAdmin(t)
	productID := env.productID(t, "BW-1")
	placeOrder(t, env, buyerToken, productID, 2)

	resp, body := env.request(t, http.MethodGet, "/api/v1/admin/dashboard/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	stats := body["stats"].(map[string]interface{})
	assert.EqualValues(t, 2, stats["total_users"])
	assert.EqualValues(t, 1, stats["total_orders"])

	resp, body = env.request(t, http.MethodGet, "/api/v1/admin/dashboard/recent-orders", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["orders"], 1)

	resp, body = env.request(t, http.MethodGet, "/api/v1/admin/dashboard/sales-chart", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body["daily_sales"])
	assert.NotNil(t, body["top_products"])
}

func TestAdminUserManagement(t *testing.T) {
	env := setupApp(t)
	env.register(t, "promoted@example.com")
	adminToken := env.loginAdmin(t)

	resp, body := env.request(t, http.MethodGet, "/api/v1/admin/users?search=promoted", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	users := body["users"].([]interface{})
	require.Len(t, users, 1)
	userID := users[0].(map[string]interface{})["id"].(string)

	// The role filter narrows the list to matching roles only.
	resp, body = env.request(t, http.MethodGet, "/api/v1/admin/users?role=user", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	filtered := body["users"].([]interface{})
	require.Len(t, filtered, 1)
	assert.Equal(t, "user", filtered[0].(map[string]interface{})["role"])

	// Role changes are validated against the closed role set.
	resp, _ = env.request(t, http.MethodPut, "/api/v1/admin/users/"+userID, adminToken, map[string]string{
		"role": "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = env.request(t, http.MethodPut, "/api/v1/admin/users/"+userID, adminToken, map[string]string{
		"role": "admin",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := body["user"].(map[string]interface{})
	assert.Equal(t, "admin", updated["role"])

	resp, body = env.request(t, http.MethodGet, "/api/v1/admin/users/"+userID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body["stats"])
}

func TestBundleManagement(t *testing.T) {
	env := setupApp(t)
	userToken := env.register(t, "plain@example.com")
	adminToken := env.loginAdmin(t)

	// Only admins may create bundles.
	resp, _ := env.request(t, http.MethodPost, "/api/v1/admin/bundles", userToken, map[string]interface{}{
		"name": "Starter Stack",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// The slug is derived from the name when omitted.
	resp, body := env.request(t, http.MethodPost, "/api/v1/admin/bundles", adminToken, map[string]interface{}{
		"name": "Starter Stack", "discount_percent": 15.0,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := body["bundle"].(map[string]interface{})
	assert.Equal(t, "starter-stack", created["slug"])

	// A second bundle with the same slug conflicts.
	resp, _ = env.request(t, http.MethodPost, "/api/v1/admin/bundles", adminToken, map[string]interface{}{
		"name": "Starter Stack",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The public catalog lists the bundle without a token.
	resp, body = env.request(t, http.MethodGet, "/api/v1/bundles", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	bundles := body["bundles"].([]interface{})
	require.Len(t, bundles, 1)

	// Updates keep the slug, change everything else.
	resp, body = env.request(t, http.MethodPut, "/api/v1/admin/bundles/starter-stack", adminToken, map[string]interface{}{
		"name": "Starter Stack Deluxe", "discount_percent": 20.0,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := body["bundle"].(map[string]interface{})
	assert.Equal(t, "starter-stack", updated["slug"])
	assert.Equal(t, "Starter Stack Deluxe", updated["name"])

	// Deleting a missing bundle is a 404; deleting the real one empties
	// the catalog.
	resp, _ = env.request(t, http.MethodDelete, "/api/v1/admin/bundles/no-such-bundle", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = env.request(t, http.MethodDelete, "/api/v1/admin/bundles/starter-stack", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = env.request(t, http.MethodGet, "/api/v1/bundles", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["bundles"])
}

func TestUserHistoryTrail(t *testing.T) {
	env := setupApp(t)
	token := env.register(t, "tracked@example.com")
	productID := env.productID(t, "BW-1")
	placeOrder(t, env, token, productID, 1)

	// Registration and the purchase both left entries, newest first.
	resp, body := env.request(t, http.MethodGet, "/api/v1/user/history", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entries := body["history"].([]interface{})
	require.Len(t, entries, 2)
	assert.Equal(t, "purchase", entries[0].(map[string]interface{})["action_type"])

	// The action_type filter narrows the trail.
	resp, body = env.request(t, http.MethodGet, "/api/v1/user/history?action_type=register", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	filtered := body["history"].([]interface{})
	require.Len(t, filtered, 1)

	// Stats carry the per-action breakdown and the totals.
	resp, body = env.request(t, http.MethodGet, "/api/v1/user/history/stats", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["total_actions"])
	assert.EqualValues(t, 2, body["recent_actions"])
	assert.Len(t, body["action_stats"], 2)

	// The trail is the user's own: another account sees nothing.
	otherToken := env.register(t, "other@example.com")
	resp, body = env.request(t, http.MethodGet, "/api/v1/user/history", otherToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	otherEntries := body["history"].([]interface{})
	require.Len(t, otherEntries, 1)
	assert.Equal(t, "register", otherEntries[0].(map[string]interface{})["action_type"])

	// Clearing wipes the trail.
	resp, _ = env.request(t, http.MethodDelete, "/api/v1/user/history/clear", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = env.request(t, http.MethodGet, "/api/v1/user/history", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["history"])
}

func TestUserOrderStatsEndpoint(t *testing.T) {
	env := setupApp(t)
	token := env.register(t, "counter@example.com")
	productID := env.productID(t, "BW-1")
	placeOrder(t, env, token, productID, 1)
	placeOrder(t, env, token, productID, 2)

	resp, body := env.request(t, http.MethodGet, "/api/v1/orders/stats", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	stats := body["stats"].(map[string]interface{})
	assert.EqualValues(t, 2, stats["total_orders"])
}
