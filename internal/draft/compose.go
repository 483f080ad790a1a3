package draft

import (
	"github.com/google/uuid"

	"uniformes/internal/domain"
)

// ValidationError carries the single user-facing message a composer
// panel shows plus the individual fields that failed, for callers that
// want per-field detail.
type ValidationError struct {
	Msg    string
	Fields []string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string, fields ...string) error {
	return &ValidationError{Msg: msg, Fields: fields}
}

// CatalogInput builds a line item from a catalog pick. The product must
// already be resolved by the caller (and be an out-of-stock product of
// the active school; in-stock items are sold directly, not ordered).
type CatalogInput struct {
	Product  domain.Product
	School   domain.School
	Quantity int
	Notes    string
}

// ComposeCatalog validates a catalog pick and returns the normalized
// line item. Unit price is the product's list price with no additive
// terms.
func ComposeCatalog(in CatalogInput) (domain.LineItem, error) {
	if in.Product.ID == "" {
		return domain.LineItem{}, invalid("no product selected", "product_id")
	}
	if in.Quantity < 1 {
		return domain.LineItem{}, invalid("quantity must be at least 1", "quantity")
	}
	return domain.LineItem{
		TempID:        uuid.NewString(),
		OrderType:     domain.TypeCatalog,
		GarmentTypeID: in.Product.GarmentTypeID,
		ProductID:     in.Product.ID,
		Quantity:      in.Quantity,
		UnitPrice:     in.Product.Price,
		Size:          in.Product.Size,
		Color:         in.Product.Color,
		Gender:        in.Product.Gender,
		SchoolID:      in.School.ID,
		SchoolName:    in.School.Name,
		Notes:         in.Notes,
	}, nil
}

// YomberInput builds a custom-measurement garment from a base product
// whose garment type allows measurements.
type YomberInput struct {
	Product         domain.Product
	School          domain.School
	Quantity        int
	Measurements    domain.Measurements
	AdditionalPrice int64 // may be negative; accepted as-is
	EmbroideryText  string
	Notes           string
}

// ComposeYomber validates the mandatory measurements (front length, back
// length, waist, overall length, each positive) and returns the line
// item. The panel-level message stays generic; the failing fields ride
// on the ValidationError. Unit price is base price plus additional
// price.
func ComposeYomber(in YomberInput) (domain.LineItem, error) {
	if in.Product.ID == "" {
		return domain.LineItem{}, invalid("no product selected", "product_id")
	}
	if in.Quantity < 1 {
		return domain.LineItem{}, invalid("quantity must be at least 1", "quantity")
	}
	if missing := in.Measurements.MissingMandatory(); len(missing) > 0 {
		return domain.LineItem{}, invalid("complete all mandatory measurements", missing...)
	}
	return domain.LineItem{
		TempID:        uuid.NewString(),
		OrderType:     domain.TypeYomber,
		GarmentTypeID: in.Product.GarmentTypeID,
		ProductID:     in.Product.ID,
		Quantity:      in.Quantity,
		UnitPrice:     in.Product.Price + in.AdditionalPrice,
		Gender:        in.Product.Gender,
		SchoolID:      in.School.ID,
		SchoolName:    in.School.Name,
		Yomber: &domain.YomberDetails{
			Measurements:    in.Measurements,
			AdditionalPrice: in.AdditionalPrice,
			EmbroideryText:  in.EmbroideryText,
		},
		Notes: in.Notes,
	}, nil
}

// CustomInput builds a fully custom item: no catalog product, the price
// is entered by hand.
type CustomInput struct {
	GarmentType domain.GarmentType
	School      domain.School
	Quantity    int
	Size        string
	Color       string
	Gender      string
	Price       int64
	Notes       string
}

// ComposeCustom is the only composer whose unit price is not derived
// from a catalog lookup; the manual price is mandatory and positive.
func ComposeCustom(in CustomInput) (domain.LineItem, error) {
	if in.GarmentType.ID == "" {
		return domain.LineItem{}, invalid("garment type required", "garment_type_id")
	}
	if in.Quantity < 1 {
		return domain.LineItem{}, invalid("quantity must be at least 1", "quantity")
	}
	if in.Price <= 0 {
		return domain.LineItem{}, invalid("price required", "unit_price")
	}
	return domain.LineItem{
		TempID:        uuid.NewString(),
		OrderType:     domain.TypeCustom,
		GarmentTypeID: in.GarmentType.ID,
		Quantity:      in.Quantity,
		UnitPrice:     in.Price,
		Size:          in.Size,
		Color:         in.Color,
		Gender:        in.Gender,
		SchoolID:      in.School.ID,
		SchoolName:    in.School.Name,
		Notes:         in.Notes,
	}, nil
}
