package handlers

import (
	"uniformes/internal/services"

	"github.com/gofiber/fiber/v2"
)

type SchoolHandler struct {
	Catalog *services.CatalogService
}

func (h *SchoolHandler) Home(c *fiber.Ctx) error {
	schools, err := h.Catalog.ListSchools()
	if err != nil {
		return c.Status(500).SendString(err.Error())
	}
	return render(c, "home", fiber.Map{"Schools": schools})
}

func (h *SchoolHandler) List(c *fiber.Ctx) error {
	schoolID := c.Params("id")
	school, err := h.Catalog.GetSchool(schoolID)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "School not found"})
	}
	products, err := h.Catalog.ListProducts(schoolID)
	if err != nil {
		return c.Status(500).SendString(err.Error())
	}
	return render(c, "school", fiber.Map{"School": school, "Products": products})
}
