package handlers

import (
	applog "uniformes/internal/log"
	"uniformes/internal/services"
	"uniformes/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	Fav *services.FavoriteService
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Fav.List(sid)
	if err != nil {
		applog.Error(c, "favorites.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load saved items"})
	}
	return render(c, "favorites", fiber.Map{"Items": items})
}

func (h *FavoriteHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid := c.FormValue("productId")
	if _, ok := validate.ID(pid); !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Fav.Save(sid, pid); err != nil {
		applog.Error(c, "favorites.save.fail", err, map[string]any{"product": pid})
		return c.Status(500).SendString("Could not save item")
	}
	back := c.Get("Referer")
	if back == "" {
		back = "/favorites"
	}
	applog.Audit(c, "favorites.save", map[string]any{"product": pid})
	return c.Redirect(back)
}

func (h *FavoriteHandler) Unsave(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid := c.FormValue("productId")
	if _, ok := validate.ID(pid); !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Fav.Unsave(sid, pid); err != nil {
		applog.Error(c, "favorites.unsave.fail", err, map[string]any{"product": pid})
		return c.Status(500).SendString("Could not remove item")
	}
	applog.Audit(c, "favorites.unsave", map[string]any{"product": pid})
	return c.Redirect("/favorites")
}
