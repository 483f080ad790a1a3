package services

import (
	"uniformes/internal/domain"
	"uniformes/internal/draft"
	"uniformes/internal/repos"
)

// ComposerService resolves catalog lookups for the three order-type
// panels and appends validated line items to the session's draft. The
// pure validation rules live in the draft package; this layer adds the
// lookups a panel cannot do itself (product, school, garment-type
// flags).
type ComposerService struct {
	Schools  *repos.SchoolRepo
	Garments *repos.GarmentTypeRepo
	Prods    *repos.ProductRepo
}

func NewComposerService(schools *repos.SchoolRepo, garments *repos.GarmentTypeRepo, prods *repos.ProductRepo) *ComposerService {
	return &ComposerService{Schools: schools, Garments: garments, Prods: prods}
}

func vErr(msg string, fields ...string) error {
	return &draft.ValidationError{Msg: msg, Fields: fields}
}

type CatalogItemInput struct {
	ProductID string
	Quantity  int
	Notes     string
}

// AddCatalog appends a catalog pick. Only out-of-stock products are
// orderable; in-stock ones are sold over the counter instead.
func (s *ComposerService) AddCatalog(d *draft.Draft, in CatalogItemInput) (domain.LineItem, error) {
	if in.ProductID == "" {
		return domain.LineItem{}, vErr("no product selected", "product_id")
	}
	p, err := s.Prods.Get(in.ProductID)
	if err != nil {
		return domain.LineItem{}, vErr("no product selected", "product_id")
	}
	if p.Stock > 0 {
		return domain.LineItem{}, vErr("product is in stock; sell it directly instead of ordering", "product_id")
	}
	school, err := s.Schools.Get(p.SchoolID)
	if err != nil {
		return domain.LineItem{}, err
	}
	it, err := draft.ComposeCatalog(draft.CatalogInput{
		Product:  p,
		School:   school,
		Quantity: in.Quantity,
		Notes:    in.Notes,
	})
	if err != nil {
		return domain.LineItem{}, err
	}
	d.AddItem(it)
	return it, nil
}

type YomberItemInput struct {
	ProductID       string
	Quantity        int
	Measurements    domain.Measurements
	AdditionalPrice int64
	EmbroideryText  string
	Notes           string
}

// AddYomber appends a custom-measurement garment. The base product's
// garment type must be flagged for measurements.
func (s *ComposerService) AddYomber(d *draft.Draft, in YomberItemInput) (domain.LineItem, error) {
	if in.ProductID == "" {
		return domain.LineItem{}, vErr("no product selected", "product_id")
	}
	p, err := s.Prods.Get(in.ProductID)
	if err != nil {
		return domain.LineItem{}, vErr("no product selected", "product_id")
	}
	g, err := s.Garments.Get(p.GarmentTypeID)
	if err != nil {
		return domain.LineItem{}, err
	}
	if !g.HasCustomMeasurements {
		return domain.LineItem{}, vErr("product does not take custom measurements", "product_id")
	}
	school, err := s.Schools.Get(p.SchoolID)
	if err != nil {
		return domain.LineItem{}, err
	}
	it, err := draft.ComposeYomber(draft.YomberInput{
		Product:         p,
		School:          school,
		Quantity:        in.Quantity,
		Measurements:    in.Measurements,
		AdditionalPrice: in.AdditionalPrice,
		EmbroideryText:  in.EmbroideryText,
		Notes:           in.Notes,
	})
	if err != nil {
		return domain.LineItem{}, err
	}
	d.AddItem(it)
	return it, nil
}

type CustomItemInput struct {
	GarmentTypeID string
	SchoolID      string
	Quantity      int
	Size          string
	Color         string
	Gender        string
	Price         int64
	Notes         string
}

// AddCustom appends a fully custom item with a hand-entered price.
func (s *ComposerService) AddCustom(d *draft.Draft, in CustomItemInput) (domain.LineItem, error) {
	if in.GarmentTypeID == "" {
		return domain.LineItem{}, vErr("garment type required", "garment_type_id")
	}
	g, err := s.Garments.Get(in.GarmentTypeID)
	if err != nil {
		return domain.LineItem{}, vErr("garment type required", "garment_type_id")
	}
	school, err := s.Schools.Get(in.SchoolID)
	if err != nil {
		return domain.LineItem{}, vErr("school required", "school_id")
	}
	it, err := draft.ComposeCustom(draft.CustomInput{
		GarmentType: g,
		School:      school,
		Quantity:    in.Quantity,
		Size:        in.Size,
		Color:       in.Color,
		Gender:      in.Gender,
		Price:       in.Price,
		Notes:       in.Notes,
	})
	if err != nil {
		return domain.LineItem{}, err
	}
	d.AddItem(it)
	return it, nil
}
