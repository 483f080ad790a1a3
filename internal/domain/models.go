package domain

// School is a tenant institution; every product and order belongs to one.
type School struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	City      string `db:"city"`
	Active    bool   `db:"active"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type GarmentType struct {
	ID                    string `db:"id"`
	Name                  string `db:"name"`
	HasCustomMeasurements bool   `db:"has_custom_measurements"`
	CreatedAt             string `db:"created_at"`
	UpdatedAt             string `db:"updated_at"`
}

// Product is a cached catalog entry. Price is in integer pesos.
type Product struct {
	ID            string `db:"id"`
	SchoolID      string `db:"school_id"`
	GarmentTypeID string `db:"garment_type_id"`
	Name          string `db:"name"`
	Size          string `db:"size"`
	Color         string `db:"color"`
	Gender        string `db:"gender"`
	Price         int64  `db:"price"`
	Stock         int    `db:"stock"`
	Active        bool   `db:"active"`
	CreatedAt     string `db:"created_at"`
	UpdatedAt     string `db:"updated_at"`
}

type Client struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Document string `db:"document"`
	Phone    string `db:"phone"`
	Email    string `db:"email"`
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}

// PaymentMethod is how an advance payment was collected.
type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayNequi    PaymentMethod = "nequi"
	PayTransfer PaymentMethod = "transfer"
	PayCard     PaymentMethod = "card"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PayCash, PayNequi, PayTransfer, PayCard:
		return true
	}
	return false
}

// OrderResult is one confirmed order returned by the backend, one per
// school partition of a submitted draft.
type OrderResult struct {
	SchoolID   string `json:"school_id"`
	SchoolName string `json:"school_name"`
	OrderID    string `json:"order_id"`
	OrderCode  string `json:"order_code"`
	Total      int64  `json:"total"`
}

// StockVerificationEntry is the backend's per-item reconciliation verdict.
// It is consumed and rendered as-is, never recomputed locally.
type StockVerificationEntry struct {
	GarmentTypeID string `json:"garment_type_id"`
	ProductID     string `json:"product_id,omitempty"`
	Requested     int    `json:"requested"`
	Available     int    `json:"available"`
	Suggested     string `json:"suggested"` // fulfill | partial | produce
}
