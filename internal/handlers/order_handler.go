package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"samurai-nutrition/internal/middleware"
	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/services"
)

// OrderHandler handles the customer-facing order routes.
type OrderHandler struct {
	service  *services.OrderService
	history  *services.HistoryService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler. The history service may be
// nil, in which case purchases are not recorded.
func NewOrderHandler(service *services.OrderService, history *services.HistoryService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		history:  history,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app. The
// stats route must come before the :id route so it is not swallowed by
// the parameter match.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/stats", h.HandleOrderStats)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Post("/", h.HandleCreateOrder)
}

// HandleListOrders returns the authenticated user's orders, newest
// first, optionally filtered by status.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	p := pageParams(c, 10)
	status := models.OrderStatus(c.Query("status"))

	orders, meta, err := h.service.ListUserOrders(user.ID, p, status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(paged("orders", orders, meta))
}

// HandleOrderStats returns the authenticated user's order statistics.
func (h *OrderHandler) HandleOrderStats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	stats, err := h.service.UserStats(user.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"stats": stats})
}

// HandleGetOrder returns a single order. Users may only read their own
// orders; admins may read any.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	order, err := h.service.GetOrderFor(user, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"order": order})
}

// HandleCreateOrder places a new order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req services.CreateOrderInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	order, err := h.service.CreateOrder(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	if h.history != nil {
		h.history.Record(user.ID, "purchase", "order "+order.OrderNumber+" placed", nil, &order.ID, c.IP(), c.Get(fiber.HeaderUserAgent))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "order placed",
		"order":   order,
	})
}
