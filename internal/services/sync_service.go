package services

import (
	"context"
	"fmt"

	"uniformes/internal/backend"
	"uniformes/internal/domain"
	"uniformes/internal/repos"
)

// SyncService refreshes the local read cache (schools, garment types,
// products with stock, clients) from the backend. Without a configured
// backend the seeded demo data serves instead.
type SyncService struct {
	Backend  *backend.Client
	Schools  *repos.SchoolRepo
	Garments *repos.GarmentTypeRepo
	Prods    *repos.ProductRepo
	Clients  *repos.ClientRepo
}

func NewSyncService(b *backend.Client, schools *repos.SchoolRepo, garments *repos.GarmentTypeRepo, prods *repos.ProductRepo, clients *repos.ClientRepo) *SyncService {
	return &SyncService{Backend: b, Schools: schools, Garments: garments, Prods: prods, Clients: clients}
}

// SyncAll pulls every read model. Counts are returned for the admin
// page; the first failed pull aborts the sync.
func (s *SyncService) SyncAll(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}

	garments, err := s.Backend.ListGarmentTypes(ctx)
	if err != nil {
		return counts, fmt.Errorf("sync garment types: %w", err)
	}
	for _, g := range garments {
		if err := s.Garments.Upsert(domain.GarmentType{
			ID: g.ID, Name: g.Name, HasCustomMeasurements: g.HasCustomMeasurements,
		}); err != nil {
			return counts, err
		}
	}
	counts["garment_types"] = len(garments)

	schools, err := s.Backend.ListSchools(ctx)
	if err != nil {
		return counts, fmt.Errorf("sync schools: %w", err)
	}
	for _, sc := range schools {
		if err := s.Schools.Upsert(domain.School{
			ID: sc.ID, Name: sc.Name, City: sc.City, Active: sc.Active,
		}); err != nil {
			return counts, err
		}
		prods, err := s.Backend.ListProducts(ctx, sc.ID)
		if err != nil {
			return counts, fmt.Errorf("sync products for %s: %w", sc.ID, err)
		}
		for _, p := range prods {
			if err := s.Prods.Upsert(domain.Product{
				ID: p.ID, SchoolID: p.SchoolID, GarmentTypeID: p.GarmentTypeID,
				Name: p.Name, Size: p.Size, Color: p.Color, Gender: p.Gender,
				Price: p.Price, Stock: p.Stock, Active: p.Active,
			}); err != nil {
				return counts, err
			}
		}
		counts["products"] += len(prods)
	}
	counts["schools"] = len(schools)

	clients, err := s.Backend.ListClients(ctx)
	if err != nil {
		return counts, fmt.Errorf("sync clients: %w", err)
	}
	for _, c := range clients {
		if err := s.Clients.Upsert(domain.Client{
			ID: c.ID, Name: c.Name, Document: c.Document, Phone: c.Phone, Email: c.Email,
		}); err != nil {
			return counts, err
		}
	}
	counts["clients"] = len(clients)

	return counts, nil
}
