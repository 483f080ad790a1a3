package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"uniformes/internal/backend"
	"uniformes/internal/draft"
	applog "uniformes/internal/log"
	"uniformes/internal/services"
)

type SubmitHandler struct {
	Drafts *draft.Store
	Submit *services.SubmitService
}

// POST /api/v1/draft/submit runs the multi-school planner. On failure
// the partial prefix of confirmed orders is returned alongside the
// error; those orders stand server-side and the draft is kept.
func (h *SubmitHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)
	d := h.Drafts.Get(sid)

	if d.Advance > d.Total() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "advance payment exceeds the order total",
		})
	}

	out, err := h.Submit.Submit(c.Context(), d)
	if err != nil {
		status := fiber.StatusBadGateway
		if errors.Is(err, services.ErrNoClient) || errors.Is(err, services.ErrEmptyDraft) {
			status = fiber.StatusBadRequest
		}
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			status = fiber.StatusBadRequest
		}
		applog.Error(c, "order.submit.fail", err, map[string]any{
			"batch_id":      out.BatchID,
			"failed_school": out.FailedSchool,
			"confirmed":     len(out.Results),
		})
		return c.Status(status).JSON(fiber.Map{
			"error":         err.Error(),
			"batch_id":      out.BatchID,
			"failed_school": out.FailedSchool,
			"results":       out.Results,
		})
	}

	applog.Audit(c, "order.submit", map[string]any{
		"batch_id": out.BatchID,
		"orders":   len(out.Results),
	})
	return c.JSON(fiber.Map{
		"batch_id": out.BatchID,
		"results":  out.Results,
	})
}
