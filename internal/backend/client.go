package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the remote backend. It relies on the http client's
// default timeout behavior; retries and cancellation policy live with
// the caller's context.
type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) *Client {
	return &Client{base: strings.TrimRight(baseURL, "/"), http: &http.Client{}}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}
	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

// CreateOrder issues POST /schools/{id}/orders for one school partition.
func (c *Client) CreateOrder(ctx context.Context, schoolID string, req OrderCreate) (OrderResponse, error) {
	var out OrderResponse
	err := c.do(ctx, http.MethodPost, "/schools/"+url.PathEscape(schoolID)+"/orders", req, &out)
	return out, err
}

// StockVerification fetches the backend's per-item reconciliation
// verdict for an order. The verdict is rendered as received, never
// recomputed here.
func (c *Client) StockVerification(ctx context.Context, schoolID, orderID string) ([]StockVerificationEntryDTO, error) {
	var out []StockVerificationEntryDTO
	path := fmt.Sprintf("/schools/%s/orders/%s/stock-verification",
		url.PathEscape(schoolID), url.PathEscape(orderID))
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) ListSchools(ctx context.Context) ([]SchoolDTO, error) {
	var out []SchoolDTO
	err := c.do(ctx, http.MethodGet, "/schools", nil, &out)
	return out, err
}

func (c *Client) ListProducts(ctx context.Context, schoolID string) ([]ProductDTO, error) {
	var out []ProductDTO
	err := c.do(ctx, http.MethodGet, "/schools/"+url.PathEscape(schoolID)+"/products", nil, &out)
	return out, err
}

func (c *Client) ListGarmentTypes(ctx context.Context) ([]GarmentTypeDTO, error) {
	var out []GarmentTypeDTO
	err := c.do(ctx, http.MethodGet, "/garment-types", nil, &out)
	return out, err
}

func (c *Client) ListClients(ctx context.Context) ([]ClientDTO, error) {
	var out []ClientDTO
	err := c.do(ctx, http.MethodGet, "/clients", nil, &out)
	return out, err
}

// StockVerificationEntryDTO mirrors the backend's verdict row.
type StockVerificationEntryDTO struct {
	GarmentTypeID string `json:"garment_type_id"`
	ProductID     string `json:"product_id,omitempty"`
	Requested     int    `json:"requested"`
	Available     int    `json:"available"`
	Suggested     string `json:"suggested"`
}
