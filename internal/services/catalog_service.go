package services

import (
	"database/sql"

	"uniformes/internal/domain"
	"uniformes/internal/repos"
)

type CatalogService struct {
	Schools  *repos.SchoolRepo
	Garments *repos.GarmentTypeRepo
	Prods    *repos.ProductRepo
}

func NewCatalogService(schools *repos.SchoolRepo, garments *repos.GarmentTypeRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Schools: schools, Garments: garments, Prods: prods}
}

func (s *CatalogService) ListSchools() ([]domain.School, error) {
	return s.Schools.List()
}

func (s *CatalogService) GetSchool(id string) (domain.School, error) {
	return s.Schools.Get(id)
}

func (s *CatalogService) ListGarmentTypes() ([]domain.GarmentType, error) {
	return s.Garments.List()
}

func (s *CatalogService) ListProducts(schoolID string) ([]domain.Product, error) {
	return s.Prods.ListBySchool(schoolID)
}

// ListOrderable is the catalog composer's pick list: out-of-stock
// products of the school.
func (s *CatalogService) ListOrderable(schoolID string) ([]domain.Product, error) {
	return s.Prods.ListOrderable(schoolID)
}

// ListMeasurable is the yomber composer's pick list: products whose
// garment type takes custom measurements.
func (s *CatalogService) ListMeasurable(schoolID string) ([]domain.Product, error) {
	return s.Prods.ListMeasurable(schoolID)
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) Search(q, schoolID string, page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	return s.Prods.Search(q, schoolID, pageSize, offset)
}

// Availability classifies cached stock for the storefront widget.
func (s *CatalogService) Availability(productID string) (domain.Availability, error) {
	p, err := s.Prods.Get(productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Availability{Status: "OUT_OF_STOCK", Qty: 0}, nil
		}
		return domain.Availability{}, err
	}

	status := "OUT_OF_STOCK"
	switch {
	case p.Stock >= 5:
		status = "IN_STOCK"
	case p.Stock > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: p.Stock}, nil
}
