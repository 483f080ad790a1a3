package handlers

import (
	"strconv"

	applog "uniformes/internal/log"
	"uniformes/internal/repos"
	"uniformes/internal/services"
	"uniformes/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Journal           *repos.JournalRepo
	Prods             *repos.ProductRepo
	Users             *repos.UserRepo
	Sync              *services.SyncService
	BackendConfigured bool
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "admin_dashboard", fiber.Map{"BackendConfigured": h.BackendConfigured})
}

// GET /admin/submissions
func (h *AdminHandler) Submissions(c *fiber.Ctx) error {
	rows, err := h.Journal.ListLatest(100)
	if err != nil {
		applog.Error(c, "admin.submissions.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load submissions"})
	}
	return render(c, "admin_submissions", fiber.Map{"Rows": rows})
}

// GET /admin/stock
func (h *AdminHandler) StockPage(c *fiber.Ctx) error {
	rows, err := h.Prods.ListStock()
	if err != nil {
		applog.Error(c, "admin.stock.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load stock"})
	}
	return render(c, "admin_stock", fiber.Map{"Rows": rows})
}

// POST /admin/stock corrects the cached stock for one product between
// syncs; the backend stays the source of truth.
func (h *AdminHandler) UpdateStock(c *fiber.Ctx) error {
	pid := c.FormValue("product_id")
	qtyStr := c.FormValue("stock")

	qty, err := strconv.Atoi(qtyStr)
	if _, okID := validate.ID(pid); !okID || err != nil || qty < 0 {
		return c.Status(400).SendString("invalid input")
	}
	if err := h.Prods.SetStock(pid, qty); err != nil {
		applog.Error(c, "admin.stock.save.fail", err, map[string]any{"product": pid, "stock": qty})
		return c.Status(400).SendString("could not save stock")
	}
	applog.Audit(c, "admin.stock.save", map[string]any{"product": pid, "stock": qty})
	return c.Redirect("/admin/stock")
}

// POST /admin/sync refreshes the read cache from the backend.
func (h *AdminHandler) RunSync(c *fiber.Ctx) error {
	if !h.BackendConfigured {
		return c.Status(400).SendString("no backend configured")
	}
	counts, err := h.Sync.SyncAll(c.Context())
	if err != nil {
		applog.Error(c, "admin.sync.fail", err, map[string]any{"counts": counts})
		return c.Status(502).SendString("sync failed: " + err.Error())
	}
	applog.Audit(c, "admin.sync", map[string]any{"counts": counts})
	return c.Redirect("/admin")
}

// UsersPage lists operators (excluding admin).
func (h *AdminHandler) UsersPage(c *fiber.Ctx) error {
	var users []struct {
		ID    string `db:"id"`
		Email string `db:"email"`
		Name  string `db:"name"`
		Role  string `db:"role"`
	}
	if err := h.Users.DB.Select(&users, `SELECT id,email,name,role FROM users WHERE role != 'ADMIN' ORDER BY email`); err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load users"})
	}
	return render(c, "admin_users", fiber.Map{"Users": users})
}

// DeleteUser removes an operator and their session data.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Users.DeleteUserCascade(id); err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user_id": id})
		return c.Status(400).SendString("could not delete user")
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.Redirect("/admin/users")
}
