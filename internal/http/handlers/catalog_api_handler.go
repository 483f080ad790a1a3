package handlers

import (
	"uniformes/internal/services"
	"uniformes/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// CatalogAPIHandler feeds the POS composer panels from the local cache.
type CatalogAPIHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/schools
func (h *CatalogAPIHandler) Schools(c *fiber.Ctx) error {
	schools, err := h.Catalog.ListSchools()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(schools)
}

// GET /api/v1/garment-types
func (h *CatalogAPIHandler) GarmentTypes(c *fiber.Ctx) error {
	garments, err := h.Catalog.ListGarmentTypes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(garments)
}

// GET /api/v1/schools/:id/products?view=catalog|yomber
// "catalog" lists only out-of-stock products (the orderable ones);
// "yomber" lists products whose garment type takes measurements.
func (h *CatalogAPIHandler) Products(c *fiber.Ctx) error {
	schoolID, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid school"})
	}
	var (
		products any
		err      error
	)
	switch c.Query("view") {
	case "catalog":
		products, err = h.Catalog.ListOrderable(schoolID)
	case "yomber":
		products, err = h.Catalog.ListMeasurable(schoolID)
	default:
		products, err = h.Catalog.ListProducts(schoolID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}
