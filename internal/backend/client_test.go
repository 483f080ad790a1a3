package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"uniformes/internal/backend"
)

func errorServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func apiErr(t *testing.T, err error) *backend.APIError {
	t.Helper()
	var ae *backend.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("want APIError, got %v", err)
	}
	return ae
}

func TestErrorDecoding_StringDetail(t *testing.T) {
	srv := errorServer(409, `{"detail":"insufficient stock for camisa"}`)
	defer srv.Close()

	_, err := backend.New(srv.URL).CreateOrder(context.Background(), "sch-a", backend.OrderCreate{})
	ae := apiErr(t, err)
	if ae.Status != 409 || ae.Message != "insufficient stock for camisa" {
		t.Fatalf("got %+v", ae)
	}
}

func TestErrorDecoding_FieldList(t *testing.T) {
	srv := errorServer(422, `{"detail":[{"loc":["body","items"],"msg":"items cannot be empty"},{"loc":["body","client_id"],"msg":"client required"}]}`)
	defer srv.Close()

	_, err := backend.New(srv.URL).CreateOrder(context.Background(), "sch-a", backend.OrderCreate{})
	ae := apiErr(t, err)
	if ae.Message != "items cannot be empty; client required" {
		t.Fatalf("field messages should be joined, got %q", ae.Message)
	}
}

func TestErrorDecoding_ErrorKey(t *testing.T) {
	srv := errorServer(400, `{"error":"bad request"}`)
	defer srv.Close()

	_, err := backend.New(srv.URL).CreateOrder(context.Background(), "sch-a", backend.OrderCreate{})
	if apiErr(t, err).Message != "bad request" {
		t.Fatalf("got %v", err)
	}
}

func TestErrorDecoding_Fallback(t *testing.T) {
	srv := errorServer(500, `<html>oops</html>`)
	defer srv.Close()

	_, err := backend.New(srv.URL).CreateOrder(context.Background(), "sch-a", backend.OrderCreate{})
	ae := apiErr(t, err)
	if ae.Message != "backend request failed (status 500)" {
		t.Fatalf("want generic fallback, got %q", ae.Message)
	}
}

func TestStockVerification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/schools/sch-a/orders/ord-1/stock-verification" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
		  {"garment_type_id":"camisa","product_id":"sj-camisa-10","requested":3,"available":3,"suggested":"fulfill"},
		  {"garment_type_id":"yomber","requested":2,"available":0,"suggested":"produce"}
		]`))
	}))
	defer srv.Close()

	rows, err := backend.New(srv.URL).StockVerification(context.Background(), "sch-a", "ord-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].Suggested != "fulfill" || rows[1].Suggested != "produce" {
		t.Fatalf("bad verdict: %+v", rows)
	}
}
