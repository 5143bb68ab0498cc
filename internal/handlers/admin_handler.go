package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"samurai-nutrition/internal/middleware"
	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/internal/services"
	"samurai-nutrition/pkg/pagination"
)

// AdminHandler handles the admin dashboard and management routes.
type AdminHandler struct {
	adminService   *services.AdminService
	productService *services.ProductService
	orderService   *services.OrderService
	validate       *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	adminService *services.AdminService,
	productService *services.ProductService,
	orderService *services.OrderService,
) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		productService: productService,
		orderService:   orderService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the admin routes. Each sub-group is guarded
// by the capability it needs, so adding a narrower staff role later only
// means touching the capability table.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	admin := router.Group("/admin")

	dashboard := admin.Group("/dashboard", middleware.RequireCapability(models.CapViewDashboard))
	dashboard.Get("/stats", h.HandleDashboardStats)
	dashboard.Get("/recent-orders", h.HandleRecentOrders)
	dashboard.Get("/sales-chart", h.HandleSalesChart)

	users := admin.Group("/users", middleware.RequireCapability(models.CapManageUsers))
	users.Get("/", h.HandleListUsers)
	users.Get("/:id", h.HandleGetUser)
	users.Put("/:id", h.HandleUpdateUser)

	products := admin.Group("/products", middleware.RequireCapability(models.CapManageProducts))
	products.Get("/", h.HandleListProducts)
	products.Post("/", h.HandleCreateProduct)
	products.Put("/:id", h.HandleUpdateProduct)
	products.Delete("/:id", h.HandleDeleteProduct)
	products.Put("/:id/stock", h.HandleAdjustStock)

	orders := admin.Group("/orders", middleware.RequireCapability(models.CapViewAllOrders))
	orders.Get("/", h.HandleListOrders)
	orders.Get("/:id", h.HandleGetOrder)
	orders.Put("/:id/status", middleware.RequireCapability(models.CapUpdateOrderStatus), h.HandleUpdateOrderStatus)

	logs := admin.Group("/logs", middleware.RequireCapability(models.CapViewAdminLogs))
	logs.Get("/", h.HandleListLogs)
}

// HandleDashboardStats returns the storefront totals for the dashboard.
func (h *AdminHandler) HandleDashboardStats(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	return c.JSON(fiber.Map{"stats": h.adminService.DashboardStats(days)})
}

// HandleRecentOrders returns the latest orders with buyer summaries.
func (h *AdminHandler) HandleRecentOrders(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	return c.JSON(fiber.Map{"orders": h.adminService.RecentOrders(limit)})
}

// HandleSalesChart returns daily sales and top products for the chart.
func (h *AdminHandler) HandleSalesChart(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	daily, top := h.adminService.SalesChart(days)
	return c.JSON(fiber.Map{
		"daily_sales":  daily,
		"top_products": top,
	})
}

// HandleListUsers returns a filtered page of users.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	p := pageParams(c, 20)
	filter := repositories.UserFilter{
		Search: c.Query("search"),
		Role:   models.Role(c.Query("role")),
	}
	users, meta, err := h.adminService.ListUsers(p, filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(paged("users", users, meta))
}

// HandleGetUser returns one user with their order statistics.
func (h *AdminHandler) HandleGetUser(c *fiber.Ctx) error {
	user, stats, err := h.adminService.GetUser(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"user":  user,
		"stats": stats,
	})
}

// UpdateUserRequest represents a partial admin update of a user.
type UpdateUserRequest struct {
	FirstName *string      `json:"first_name"`
	LastName  *string      `json:"last_name"`
	Email     *string      `json:"email" validate:"omitempty,email"`
	Role      *models.Role `json:"role"`
}

// HandleUpdateUser applies a partial update to a user.
func (h *AdminHandler) HandleUpdateUser(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}
	if req.Role != nil && !req.Role.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown role"})
	}

	user, err := h.adminService.UpdateUser(actor, c.IP(), c.Params("id"), services.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "user updated",
		"user":    user,
	})
}

// HandleListProducts returns a filtered page of products, including
// inactive ones.
func (h *AdminHandler) HandleListProducts(c *fiber.Ctx) error {
	p := pageParams(c, 20)
	filter := repositories.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		LowStock: c.QueryBool("low_stock", false),
	}
	if c.Query("is_active") != "" {
		active := c.QueryBool("is_active")
		filter.IsActive = &active
	}

	products, total, err := h.productService.AdminList(p, filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(paged("products", products, pagination.NewMeta(p, total)))
}

// HandleCreateProduct creates a new product.
func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if product.Name == "" || product.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and a positive price are required"})
	}

	if err := h.productService.Create(actor.ID, c.IP(), &product); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "product created",
		"product": product,
	})
}

// HandleUpdateProduct updates an existing product.
func (h *AdminHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	product, err := h.productService.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	product.ID = c.Params("id")

	if err := h.productService.Update(actor.ID, c.IP(), product); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "product updated",
		"product": product,
	})
}

// HandleDeleteProduct deletes a product.
func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	if err := h.productService.Delete(actor.ID, c.IP(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}

// AdjustStockRequest represents a manual stock adjustment.
type AdjustStockRequest struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason"`
}

// HandleAdjustStock applies a signed stock adjustment to a product.
func (h *AdminHandler) HandleAdjustStock(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var req AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	product, err := h.productService.AdjustStock(actor.ID, c.IP(), c.Params("id"), req.Delta, req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "stock adjusted",
		"product": product,
	})
}

// HandleListOrders returns a page of all orders, optionally filtered by
// status.
func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	p := pageParams(c, 20)
	status := models.OrderStatus(c.Query("status"))

	orders, meta, err := h.orderService.ListAllOrders(p, status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(paged("orders", orders, meta))
}

// HandleGetOrder returns one order in full detail, items and history
// included.
func (h *AdminHandler) HandleGetOrder(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	order, err := h.orderService.GetOrderFor(actor, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"order": order})
}

// UpdateOrderStatusRequest represents an order status transition.
type UpdateOrderStatusRequest struct {
	Status  models.OrderStatus `json:"status" validate:"required"`
	Comment string             `json:"comment"`
}

// HandleUpdateOrderStatus transitions an order to a new status. Setting
// the status an order already has is a no-op and reports changed=false.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	order, changed, err := h.orderService.UpdateStatus(actor, c.Params("id"), req.Status, req.Comment, c.IP())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "order status updated",
		"changed": changed,
		"order":   order,
	})
}

// HandleListLogs returns a page of the admin audit trail.
func (h *AdminHandler) HandleListLogs(c *fiber.Ctx) error {
	p := pageParams(c, 20)
	filter := repositories.AdminLogFilter{
		Action:  c.Query("action"),
		AdminID: c.Query("admin_id"),
	}
	logs, meta, err := h.adminService.ListLogs(p, filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(paged("logs", logs, meta))
}
