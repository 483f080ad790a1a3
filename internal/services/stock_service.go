package services

import (
	"context"

	"uniformes/internal/backend"
	"uniformes/internal/domain"
)

// StockService fetches the backend's stock-reconciliation verdict for a
// confirmed order. The classification (fulfill/partial/produce) is
// computed by the backend against live inventory; it is only relayed
// here, never derived from the local cache.
type StockService struct {
	Backend *backend.Client
}

func NewStockService(b *backend.Client) *StockService {
	return &StockService{Backend: b}
}

func (s *StockService) Verification(ctx context.Context, schoolID, orderID string) ([]domain.StockVerificationEntry, error) {
	rows, err := s.Backend.StockVerification(ctx, schoolID, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.StockVerificationEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.StockVerificationEntry{
			GarmentTypeID: r.GarmentTypeID,
			ProductID:     r.ProductID,
			Requested:     r.Requested,
			Available:     r.Available,
			Suggested:     r.Suggested,
		})
	}
	return out, nil
}
