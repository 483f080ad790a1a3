package domain

// OrderType tags the three line-item variants.
type OrderType string

const (
	TypeCatalog OrderType = "catalog"
	TypeYomber  OrderType = "yomber"
	TypeCustom  OrderType = "custom"
)

// Measurements is a yomber measurement record. The first four fields are
// mandatory and must be positive; the rest are optional and forwarded to
// the backend without validation.
type Measurements struct {
	FrontLength float64 `json:"front_length"`
	BackLength  float64 `json:"back_length"`
	Waist       float64 `json:"waist"`
	Length      float64 `json:"length"`

	Shoulder    float64 `json:"shoulder,omitempty"`
	Bust        float64 `json:"bust,omitempty"`
	Hip         float64 `json:"hip,omitempty"`
	Neck        float64 `json:"neck,omitempty"`
	Sleeve      float64 `json:"sleeve,omitempty"`
	ChestWidth  float64 `json:"chest_width,omitempty"`
	BackWidth   float64 `json:"back_width,omitempty"`
	ArmLength   float64 `json:"arm_length,omitempty"`
	TorsoLength float64 `json:"torso_length,omitempty"`
	SkirtLength float64 `json:"skirt_length,omitempty"`
}

// MissingMandatory returns the mandatory fields that are absent or not
// positive, in a fixed order.
func (m Measurements) MissingMandatory() []string {
	var out []string
	if m.FrontLength <= 0 {
		out = append(out, "front_length")
	}
	if m.BackLength <= 0 {
		out = append(out, "back_length")
	}
	if m.Waist <= 0 {
		out = append(out, "waist")
	}
	if m.Length <= 0 {
		out = append(out, "length")
	}
	return out
}

// YomberDetails exists only on yomber line items.
type YomberDetails struct {
	Measurements    Measurements `json:"measurements"`
	AdditionalPrice int64        `json:"additional_price"`
	EmbroideryText  string       `json:"embroidery_text,omitempty"`
}

// LineItem is one unit-priced entry in an order draft. TempID is client
// local and discarded on submit. Yomber is nil unless OrderType is
// TypeYomber; ProductID is empty for custom items.
type LineItem struct {
	TempID        string         `json:"temp_id"`
	OrderType     OrderType      `json:"order_type"`
	GarmentTypeID string         `json:"garment_type_id"`
	ProductID     string         `json:"product_id,omitempty"`
	Quantity      int            `json:"quantity"`
	UnitPrice     int64          `json:"unit_price"`
	Size          string         `json:"size,omitempty"`
	Color         string         `json:"color,omitempty"`
	Gender        string         `json:"gender,omitempty"`
	SchoolID      string         `json:"school_id"`
	SchoolName    string         `json:"school_name"`
	Yomber        *YomberDetails `json:"yomber,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

func (it LineItem) Subtotal() int64 { return it.UnitPrice * int64(it.Quantity) }
