package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"uniformes/internal/services"
)

type AvailabilityHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/availability?productId= classifies cached stock for the
// storefront widget.
func (h *AvailabilityHandler) Check(c *fiber.Ctx) error {
	productID := strings.TrimSpace(c.Query("productId"))
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing productId",
		})
	}

	avail, err := h.Catalog.Availability(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(avail)
}
