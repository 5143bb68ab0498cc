package handlers

import (
	"github.com/gofiber/fiber/v2"

	"samurai-nutrition/internal/services"
)

// ProductHandler handles the public product catalog routes.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/categories", h.HandleListCategories)
	productRoutes.Get("/category/:category", h.HandleListByCategory)
	productRoutes.Get("/:id", h.HandleGetProduct)
}

// HandleListProducts returns every active product.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListActive()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

// HandleListCategories returns the distinct categories of active products.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// HandleListByCategory returns the active products in one category.
func (h *ProductHandler) HandleListByCategory(c *fiber.Ctx) error {
	products, err := h.service.ListActiveByCategory(c.Params("category"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

// HandleGetProduct returns a single product by ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"product": product})
}
