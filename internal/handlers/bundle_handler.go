package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"samurai-nutrition/internal/middleware"
	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/services"
)

// BundleHandler handles the bundle catalog and its admin management.
type BundleHandler struct {
	service  *services.BundleService
	validate *validator.Validate
}

// NewBundleHandler creates a new BundleHandler.
func NewBundleHandler(service *services.BundleService) *BundleHandler {
	return &BundleHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public bundle routes.
func (h *BundleHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/bundles", h.HandleListBundles)
}

// RegisterAdminRoutes registers the bundle management routes. They share
// the product-management capability.
func (h *BundleHandler) RegisterAdminRoutes(router fiber.Router) {
	bundles := router.Group("/admin/bundles", middleware.RequireCapability(models.CapManageProducts))
	bundles.Post("/", h.HandleCreateBundle)
	bundles.Put("/:slug", h.HandleUpdateBundle)
	bundles.Delete("/:slug", h.HandleDeleteBundle)
}

// HandleListBundles returns every bundle in curated order.
func (h *BundleHandler) HandleListBundles(c *fiber.Ctx) error {
	bundles, err := h.service.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"bundles": bundles})
}

// HandleCreateBundle creates a bundle. The slug is derived from the name
// when omitted; a colliding slug conflicts.
func (h *BundleHandler) HandleCreateBundle(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var bundle models.Bundle
	if err := c.BodyParser(&bundle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(bundle); err != nil {
		return validationError(c, err)
	}

	if err := h.service.Create(actor.ID, c.IP(), &bundle); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "bundle created",
		"bundle":  bundle,
	})
}

// HandleUpdateBundle updates an existing bundle; the slug itself is
// immutable.
func (h *BundleHandler) HandleUpdateBundle(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	bundle, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	id, slug := bundle.ID, bundle.Slug
	if err := c.BodyParser(bundle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	bundle.ID, bundle.Slug = id, slug

	if err := h.service.Update(actor.ID, c.IP(), bundle); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "bundle updated",
		"bundle":  bundle,
	})
}

// HandleDeleteBundle removes a bundle.
func (h *BundleHandler) HandleDeleteBundle(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	if err := h.service.Delete(actor.ID, c.IP(), c.Params("slug")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "bundle deleted"})
}
