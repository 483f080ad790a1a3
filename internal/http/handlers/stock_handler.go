package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"uniformes/internal/backend"
	applog "uniformes/internal/log"
	"uniformes/internal/services"
	"uniformes/internal/validate"
)

// StockHandler relays the backend's stock-reconciliation verdict for a
// confirmed order. The verdict is never computed locally.
type StockHandler struct {
	Stock *services.StockService
}

// GET /api/v1/schools/:schoolId/orders/:orderId/stock-verification
func (h *StockHandler) Verification(c *fiber.Ctx) error {
	schoolID, ok := validate.ID(c.Params("schoolId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid school"})
	}
	orderID, ok := validate.ID(c.Params("orderId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order"})
	}

	entries, err := h.Stock.Verification(c.Context(), schoolID, orderID)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			return c.Status(apiErr.Status).JSON(fiber.Map{"error": apiErr.Message})
		}
		applog.Error(c, "stock.verification.fail", err, map[string]any{"order": orderID})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not reach the backend"})
	}
	return c.JSON(entries)
}
