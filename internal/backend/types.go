// Package backend is the HTTP client for the remote order backend. The
// request and response schemas here mirror the backend's contract; the
// backend owns inventory mutation, order numbering and persistence.
package backend

import "uniformes/internal/domain"

// OrderItemCreate is one line item in the backend's order schema.
type OrderItemCreate struct {
	GarmentTypeID      string               `json:"garment_type_id"`
	Quantity           int                  `json:"quantity"`
	OrderType          domain.OrderType     `json:"order_type"`
	ProductID          string               `json:"product_id,omitempty"`
	UnitPrice          int64                `json:"unit_price"`
	AdditionalPrice    int64                `json:"additional_price,omitempty"`
	Size               string               `json:"size,omitempty"`
	Color              string               `json:"color,omitempty"`
	Gender             string               `json:"gender,omitempty"`
	CustomMeasurements *domain.Measurements `json:"custom_measurements,omitempty"`
	EmbroideryText     string               `json:"embroidery_text,omitempty"`
	Notes              string               `json:"notes,omitempty"`
}

// OrderCreate is the body of POST /schools/{id}/orders. AdvancePayment
// is a pointer so a zero share is omitted entirely rather than sent as
// 0; the method is only attached alongside a positive advance.
type OrderCreate struct {
	SchoolID             string            `json:"school_id"`
	ClientID             string            `json:"client_id"`
	DeliveryDate         string            `json:"delivery_date,omitempty"`
	Notes                string            `json:"notes,omitempty"`
	Items                []OrderItemCreate `json:"items"`
	AdvancePayment       *int64            `json:"advance_payment,omitempty"`
	AdvancePaymentMethod string            `json:"advance_payment_method,omitempty"`
}

// OrderResponse is the confirmed order the backend returns.
type OrderResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Total int64  `json:"total"`
}

// Read-side DTOs, mapped into the local cache by the sync service.

type SchoolDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city,omitempty"`
	Active bool   `json:"active"`
}

type GarmentTypeDTO struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	HasCustomMeasurements bool   `json:"has_custom_measurements"`
}

type ProductDTO struct {
	ID            string `json:"id"`
	SchoolID      string `json:"school_id"`
	GarmentTypeID string `json:"garment_type_id"`
	Name          string `json:"name"`
	Size          string `json:"size,omitempty"`
	Color         string `json:"color,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Price         int64  `json:"price"`
	Stock         int    `json:"stock"`
	Active        bool   `json:"active"`
}

type ClientDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}
