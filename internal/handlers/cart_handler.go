package handlers

import (
	"github.com/gofiber/fiber/v2"

	"samurai-nutrition/internal/middleware"
	"samurai-nutrition/internal/services"
)

// CartHandler handles the cart and wishlist routes.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers the cart and wishlist routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/add/:product_id", h.HandleAddToCart)
	cartRoutes.Put("/update_quantity/:product_id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/remove/:product_id", h.HandleRemoveFromCart)
	cartRoutes.Delete("/empty", h.HandleEmptyCart)

	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/add/:product_id", h.HandleAddToWishlist)
	wishlistRoutes.Delete("/remove/:product_id", h.HandleRemoveFromWishlist)
}

// HandleGetCart returns the authenticated user's cart.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	cart, err := h.service.GetCart(user.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"cart": cart})
}

// HandleAddToCart adds one unit of a product to the cart, incrementing
// the quantity if the product is already present.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	cart, err := h.service.AddToCart(user.ID, c.Params("product_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "added to cart",
		"cart":    cart,
	})
}

// UpdateQuantityRequest represents the request body for a cart quantity change.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity sets the quantity of a cart line. A quantity of
// zero or less removes the line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	cart, err := h.service.UpdateQuantity(user.ID, c.Params("product_id"), req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "cart updated",
		"cart":    cart,
	})
}

// HandleRemoveFromCart removes a product from the cart.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.service.RemoveFromCart(user.ID, c.Params("product_id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "removed from cart"})
}

// HandleEmptyCart removes every line from the cart.
func (h *CartHandler) HandleEmptyCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.service.EmptyCart(user.ID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "cart emptied"})
}

// HandleGetWishlist returns the authenticated user's wishlist.
func (h *CartHandler) HandleGetWishlist(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	wishlist, err := h.service.GetWishlist(user.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"wishlist": wishlist})
}

// HandleAddToWishlist adds a product to the wishlist. Adding a product
// that is already present is a conflict.
func (h *CartHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	item, err := h.service.AddToWishlist(user.ID, c.Params("product_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "added to wishlist",
		"item":    item,
	})
}

// HandleRemoveFromWishlist removes a product from the wishlist.
func (h *CartHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.service.RemoveFromWishlist(user.ID, c.Params("product_id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "removed from wishlist"})
}
