package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"uniformes/internal/domain"
	"uniformes/internal/draft"
	applog "uniformes/internal/log"
	"uniformes/internal/services"
	"uniformes/internal/validate"
)

// DraftHandler is the POS order-composition API: one in-memory draft per
// session, three add-item panels, removal and the aggregated view.
type DraftHandler struct {
	Drafts   *draft.Store
	Composer *services.ComposerService
}

func composerError(c *fiber.Ctx, err error) error {
	var ve *draft.ValidationError
	if errors.As(err, &ve) {
		applog.Security(c, "validation.fail", map[string]any{"fields": ve.Fields})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  ve.Msg,
			"fields": ve.Fields,
		})
	}
	applog.Error(c, "draft.item.fail", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not add item"})
}

type partitionView struct {
	SchoolID   string            `json:"school_id"`
	SchoolName string            `json:"school_name"`
	Subtotal   int64             `json:"subtotal"`
	Items      []domain.LineItem `json:"items"`
}

func draftView(d *draft.Draft) fiber.Map {
	parts := d.PartitionBySchool()
	views := make([]partitionView, 0, len(parts))
	for _, p := range parts {
		views = append(views, partitionView{
			SchoolID:   p.SchoolID,
			SchoolName: p.SchoolName,
			Subtotal:   p.Subtotal(),
			Items:      p.Items,
		})
	}
	return fiber.Map{
		"client_id":              d.ClientID,
		"delivery_date":          d.DeliveryDate,
		"notes":                  d.Notes,
		"advance_payment":        d.Advance,
		"advance_payment_method": d.AdvanceMethod,
		"items":                  d.Items(),
		"total":                  d.Total(),
		"partitions":             views,
	}
}

// GET /api/v1/draft
func (h *DraftHandler) View(c *fiber.Ctx) error {
	d := h.Drafts.Get(ensureSID(c))
	return c.JSON(draftView(d))
}

type draftMetaReq struct {
	ClientID             string `json:"client_id"`
	DeliveryDate         string `json:"delivery_date"`
	Notes                string `json:"notes"`
	AdvancePayment       int64  `json:"advance_payment"`
	AdvancePaymentMethod string `json:"advance_payment_method"`
}

// PUT /api/v1/draft sets the whole-cart fields (client, delivery date,
// notes, advance payment and its method).
func (h *DraftHandler) SetMeta(c *fiber.Ctx) error {
	var req draftMetaReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if _, ok := validate.Date(req.DeliveryDate); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "delivery date must be YYYY-MM-DD"})
	}
	if req.AdvancePayment < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "advance payment cannot be negative"})
	}
	method := domain.PaymentMethod(req.AdvancePaymentMethod)
	if req.AdvancePayment > 0 && !method.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "choose a payment method for the advance"})
	}

	d := h.Drafts.Get(ensureSID(c))
	d.ClientID = req.ClientID
	d.DeliveryDate = req.DeliveryDate
	d.Notes = req.Notes
	d.Advance = req.AdvancePayment
	if req.AdvancePayment > 0 {
		d.AdvanceMethod = method
	} else {
		d.AdvanceMethod = ""
	}
	return c.JSON(draftView(d))
}

type catalogItemReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// POST /api/v1/draft/items/catalog
func (h *DraftHandler) AddCatalog(c *fiber.Ctx) error {
	var req catalogItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	d := h.Drafts.Get(ensureSID(c))
	it, err := h.Composer.AddCatalog(d, services.CatalogItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		return composerError(c, err)
	}
	applog.Audit(c, "draft.item.catalog", map[string]any{"product": req.ProductID, "qty": req.Quantity})
	return c.Status(fiber.StatusCreated).JSON(it)
}

type yomberItemReq struct {
	ProductID       string              `json:"product_id"`
	Quantity        int                 `json:"quantity"`
	Measurements    domain.Measurements `json:"measurements"`
	AdditionalPrice int64               `json:"additional_price"`
	EmbroideryText  string              `json:"embroidery_text"`
	Notes           string              `json:"notes"`
}

// POST /api/v1/draft/items/yomber
func (h *DraftHandler) AddYomber(c *fiber.Ctx) error {
	var req yomberItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	d := h.Drafts.Get(ensureSID(c))
	it, err := h.Composer.AddYomber(d, services.YomberItemInput{
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		Measurements:    req.Measurements,
		AdditionalPrice: req.AdditionalPrice,
		EmbroideryText:  req.EmbroideryText,
		Notes:           req.Notes,
	})
	if err != nil {
		return composerError(c, err)
	}
	applog.Audit(c, "draft.item.yomber", map[string]any{"product": req.ProductID, "qty": req.Quantity})
	return c.Status(fiber.StatusCreated).JSON(it)
}

type customItemReq struct {
	GarmentTypeID string `json:"garment_type_id"`
	SchoolID      string `json:"school_id"`
	Quantity      int    `json:"quantity"`
	Size          string `json:"size"`
	Color         string `json:"color"`
	Gender        string `json:"gender"`
	UnitPrice     int64  `json:"unit_price"`
	Notes         string `json:"notes"`
}

// POST /api/v1/draft/items/custom
func (h *DraftHandler) AddCustom(c *fiber.Ctx) error {
	var req customItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	d := h.Drafts.Get(ensureSID(c))
	it, err := h.Composer.AddCustom(d, services.CustomItemInput{
		GarmentTypeID: req.GarmentTypeID,
		SchoolID:      req.SchoolID,
		Quantity:      req.Quantity,
		Size:          req.Size,
		Color:         req.Color,
		Gender:        req.Gender,
		Price:         req.UnitPrice,
		Notes:         req.Notes,
	})
	if err != nil {
		return composerError(c, err)
	}
	applog.Audit(c, "draft.item.custom", map[string]any{"garment": req.GarmentTypeID, "qty": req.Quantity})
	return c.Status(fiber.StatusCreated).JSON(it)
}

// DELETE /api/v1/draft/items/:tempId — removing an unknown id is a no-op.
func (h *DraftHandler) RemoveItem(c *fiber.Ctx) error {
	tempID := c.Params("tempId")
	d := h.Drafts.Get(ensureSID(c))
	removed := d.RemoveItem(tempID)
	return c.JSON(fiber.Map{"removed": removed, "total": d.Total()})
}
