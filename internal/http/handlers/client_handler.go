package handlers

import (
	"strings"

	"uniformes/internal/repos"
	"uniformes/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	Clients *repos.ClientRepo
}

// GET /api/v1/clients?q= looks up cached clients by name or document.
func (h *ClientHandler) Search(c *fiber.Ctx) error {
	rawQ := strings.TrimSpace(c.Query("q"))
	q := ""
	if rawQ != "" {
		var ok bool
		q, ok = validate.Q(rawQ)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid search term"})
		}
		q = strings.ToLower(q)
	}
	clients, err := h.Clients.Search(q, 20)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(clients)
}
