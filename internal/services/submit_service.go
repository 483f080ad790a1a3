package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"uniformes/internal/backend"
	"uniformes/internal/domain"
	"uniformes/internal/draft"
	"uniformes/internal/repos"
)

var (
	ErrNoClient   = errors.New("select a client before submitting")
	ErrEmptyDraft = errors.New("the order has no items")
)

// SubmitService turns one draft into N backend orders, one per school.
// Calls are strictly sequential so a failure leaves a deterministic,
// inspectable prefix of created orders instead of a racy partial set.
type SubmitService struct {
	Backend *backend.Client
	Journal *repos.JournalRepo
}

func NewSubmitService(b *backend.Client, journal *repos.JournalRepo) *SubmitService {
	return &SubmitService{Backend: b, Journal: journal}
}

// Outcome is what a submission attempt produced. Results holds the
// orders that were confirmed before any failure; those orders stand
// server-side and stay journaled even when Failed is set.
type Outcome struct {
	BatchID      string               `json:"batch_id"`
	Results      []domain.OrderResult `json:"results"`
	FailedSchool string               `json:"failed_school,omitempty"`
}

// Submit plans and executes the per-school submission. The draft is
// cleared only after every partition succeeds, never partially.
func (s *SubmitService) Submit(ctx context.Context, d *draft.Draft) (Outcome, error) {
	out := Outcome{BatchID: uuid.NewString()}

	if d.ClientID == "" {
		return out, ErrNoClient
	}
	parts := d.PartitionBySchool()
	if len(parts) == 0 {
		return out, ErrEmptyDraft
	}

	subtotals := make([]int64, len(parts))
	for i, p := range parts {
		subtotals[i] = p.Subtotal()
	}
	advances := draft.AllocateAdvance(subtotals, d.Advance)

	for i, p := range parts {
		req := backend.OrderCreate{
			SchoolID:     p.SchoolID,
			ClientID:     d.ClientID,
			DeliveryDate: d.DeliveryDate,
			Notes:        d.Notes,
			Items:        toOrderItems(p.Items),
		}
		if advances[i] > 0 {
			adv := advances[i]
			req.AdvancePayment = &adv
			req.AdvancePaymentMethod = string(d.AdvanceMethod)
		}

		resp, err := s.Backend.CreateOrder(ctx, p.SchoolID, req)
		if err != nil {
			// Orders created so far stand; the draft is kept so the
			// operator can retry or rework it.
			out.FailedSchool = p.SchoolName
			return out, err
		}

		res := domain.OrderResult{
			SchoolID:   p.SchoolID,
			SchoolName: p.SchoolName,
			OrderID:    resp.ID,
			OrderCode:  resp.Code,
			Total:      resp.Total,
		}
		out.Results = append(out.Results, res)
		if s.Journal != nil {
			if jerr := s.Journal.Record(out.BatchID, d.ClientID, res, advances[i]); jerr != nil {
				// journal is best effort; the backend order exists either way
				continue
			}
		}
	}

	d.Clear()
	return out, nil
}

func toOrderItems(items []domain.LineItem) []backend.OrderItemCreate {
	out := make([]backend.OrderItemCreate, 0, len(items))
	for _, it := range items {
		oc := backend.OrderItemCreate{
			GarmentTypeID: it.GarmentTypeID,
			Quantity:      it.Quantity,
			OrderType:     it.OrderType,
			ProductID:     it.ProductID,
			UnitPrice:     it.UnitPrice,
			Size:          it.Size,
			Color:         it.Color,
			Gender:        it.Gender,
			Notes:         it.Notes,
		}
		if it.Yomber != nil {
			// The backend wants the base price and the surcharge apart.
			oc.UnitPrice = it.UnitPrice - it.Yomber.AdditionalPrice
			oc.AdditionalPrice = it.Yomber.AdditionalPrice
			m := it.Yomber.Measurements
			oc.CustomMeasurements = &m
			oc.EmbroideryText = it.Yomber.EmbroideryText
		}
		out = append(out, oc)
	}
	return out
}
