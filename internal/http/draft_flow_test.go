package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"uniformes/internal/backend"
	"uniformes/internal/config"
	"uniformes/internal/draft"
	"uniformes/internal/http/handlers"
	"uniformes/internal/repos"
	"uniformes/internal/services"
)

// fakeOrderBackend stands in for the remote order backend. It records
// every order body it receives and can be told to reject a school.
type fakeOrderBackend struct {
	t          *testing.T
	orders     []map[string]any
	rejectPath string // reject POSTs whose path contains this school id
}

func (f *fakeOrderBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/schools/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/orders") {
			http.NotFound(w, r)
			return
		}
		if f.rejectPath != "" && strings.Contains(r.URL.Path, f.rejectPath) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			fmt.Fprint(w, `{"detail":"insufficient fabric for production"}`)
			return
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			f.t.Errorf("backend got undecodable order body: %v", err)
		}
		f.orders = append(f.orders, body)
		n := len(f.orders)
		var total int64
		if items, ok := body["items"].([]any); ok {
			for _, raw := range items {
				it := raw.(map[string]any)
				up := int64(it["unit_price"].(float64))
				if ap, ok := it["additional_price"].(float64); ok {
					up += int64(ap)
				}
				total += up * int64(it["quantity"].(float64))
			}
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id":"ord-%d","code":"PED-%04d","total":%d}`, n, n, total)
	})
	return mux
}

// newPOSApp wires the draft API the way main does, against the given
// backend URL. CSRF is skipped for /api routes there too.
func newPOSApp(t *testing.T, backendURL string) (*fiber.App, *sqlx.DB) {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", BackendURL: backendURL}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, cfg, authSvc, backend.New(backendURL), draft.NewStore())
	api := app.Group("/api/v1")
	pos := api.Group("/draft")
	pos.Get("/", deps.DraftHandler.View)
	pos.Put("/", deps.DraftHandler.SetMeta)
	pos.Post("/items/catalog", deps.DraftHandler.AddCatalog)
	pos.Post("/items/yomber", deps.DraftHandler.AddYomber)
	pos.Post("/items/custom", deps.DraftHandler.AddCustom)
	pos.Delete("/items/:tempId", deps.DraftHandler.RemoveItem)
	pos.Post("/submit", deps.SubmitHandler.Place)

	return app, db
}

type posSession struct {
	t   *testing.T
	app *fiber.App
	sid string
}

func (s *posSession) doJSON(method, path string, body any) (*http.Response, map[string]any) {
	s.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: s.sid})
	}
	resp, err := s.app.Test(req)
	if err != nil {
		s.t.Fatalf("%s %s: %v", method, path, err)
	}
	if s.sid == "" {
		s.sid = extractCookie(resp, "sid")
	}
	data, _ := io.ReadAll(resp.Body)
	var out map[string]any
	if len(data) > 0 {
		_ = json.Unmarshal(data, &out)
	}
	return resp, out
}

func fillDraft(s *posSession) {
	s.t.Helper()

	// Catalog pick: sold out locally, so it goes on the production order
	resp, body := s.doJSON("POST", "/api/v1/draft/items/catalog", map[string]any{
		"product_id": "sj-camisa-10",
		"quantity":   2,
	})
	if resp.StatusCode != http.StatusCreated {
		s.t.Fatalf("add catalog: expected 201, got %d body=%v", resp.StatusCode, body)
	}

	// Yomber with full mandatory measurements and a surcharge
	resp, body = s.doJSON("POST", "/api/v1/draft/items/yomber", map[string]any{
		"product_id":       "sj-yomber-8",
		"quantity":         1,
		"additional_price": 5000,
		"measurements": map[string]any{
			"front_length": 52.0,
			"back_length":  54.0,
			"waist":        60.0,
			"length":       75.0,
		},
	})
	if resp.StatusCode != http.StatusCreated {
		s.t.Fatalf("add yomber: expected 201, got %d body=%v", resp.StatusCode, body)
	}

	// Fully custom garment for a second school
	resp, body = s.doJSON("POST", "/api/v1/draft/items/custom", map[string]any{
		"garment_type_id": "falda",
		"school_id":       "liceo-norte",
		"quantity":        2,
		"size":            "10",
		"unit_price":      12000,
	})
	if resp.StatusCode != http.StatusCreated {
		s.t.Fatalf("add custom: expected 201, got %d body=%v", resp.StatusCode, body)
	}

	resp, body = s.doJSON("PUT", "/api/v1/draft/", map[string]any{
		"client_id":              "cl-0001",
		"delivery_date":          "2026-09-15",
		"advance_payment":        50000,
		"advance_payment_method": "cash",
	})
	if resp.StatusCode != http.StatusOK {
		s.t.Fatalf("set meta: expected 200, got %d body=%v", resp.StatusCode, body)
	}
}

func TestDraftFlowSubmitAllSchools(t *testing.T) {
	fake := &fakeOrderBackend{t: t}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	app, db := newPOSApp(t, srv.URL)
	s := &posSession{t: t, app: app}
	fillDraft(s)

	// The aggregated view partitions by school, first-seen order
	resp, view := s.doJSON("GET", "/api/v1/draft/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("view draft: got %d", resp.StatusCode)
	}
	if got := int64(view["total"].(float64)); got != 200000 {
		t.Fatalf("draft total: expected 200000, got %d", got)
	}
	parts := view["partitions"].([]any)
	if len(parts) != 2 {
		t.Fatalf("expected 2 partitions, got %d", len(parts))
	}
	p0 := parts[0].(map[string]any)
	if p0["school_id"] != "col-sanjose" || int64(p0["subtotal"].(float64)) != 176000 {
		t.Fatalf("first partition wrong: %v", p0)
	}
	p1 := parts[1].(map[string]any)
	if p1["school_id"] != "liceo-norte" || int64(p1["subtotal"].(float64)) != 24000 {
		t.Fatalf("second partition wrong: %v", p1)
	}

	resp, out := s.doJSON("POST", "/api/v1/draft/submit", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d body=%v", resp.StatusCode, out)
	}
	results := out["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("expected 2 confirmed orders, got %d", len(results))
	}

	// One backend order per school, in partition order
	if len(fake.orders) != 2 {
		t.Fatalf("backend expected 2 orders, got %d", len(fake.orders))
	}
	first, second := fake.orders[0], fake.orders[1]
	if first["school_id"] != "col-sanjose" || second["school_id"] != "liceo-norte" {
		t.Fatalf("orders out of school order: %v / %v", first["school_id"], second["school_id"])
	}

	// Proportional advance split: 50000 over 176000/24000 of 200000
	if adv := int64(first["advance_payment"].(float64)); adv != 44000 {
		t.Fatalf("first advance: expected 44000, got %d", adv)
	}
	if first["advance_payment_method"] != "cash" {
		t.Fatalf("advance method missing on first order: %v", first)
	}
	if adv := int64(second["advance_payment"].(float64)); adv != 6000 {
		t.Fatalf("second advance: expected 6000, got %d", adv)
	}

	// The yomber line carries the base price, surcharge and measurements
	items := first["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("first order expected 2 items, got %d", len(items))
	}
	yom := items[1].(map[string]any)
	if int64(yom["unit_price"].(float64)) != 95000 || int64(yom["additional_price"].(float64)) != 5000 {
		t.Fatalf("yomber pricing wrong: %v", yom)
	}
	if _, ok := yom["custom_measurements"].(map[string]any); !ok {
		t.Fatalf("yomber measurements missing: %v", yom)
	}

	// Full success clears the draft
	_, cleared := s.doJSON("GET", "/api/v1/draft/", nil)
	if got := int64(cleared["total"].(float64)); got != 0 {
		t.Fatalf("draft not cleared after submit: total=%d", got)
	}

	// And every confirmed order is journaled under one batch
	var n int
	if err := db.Get(&n, `SELECT COUNT(DISTINCT batch_id) FROM submissions`); err != nil {
		t.Fatalf("count batches: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 batch in journal, got %d", n)
	}
}

func TestDraftFlowPartialFailureKeepsDraft(t *testing.T) {
	fake := &fakeOrderBackend{t: t, rejectPath: "liceo-norte"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	app, db := newPOSApp(t, srv.URL)
	s := &posSession{t: t, app: app}
	fillDraft(s)

	resp, out := s.doJSON("POST", "/api/v1/draft/submit", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("submit: expected 400 on backend rejection, got %d body=%v", resp.StatusCode, out)
	}
	if msg, _ := out["error"].(string); !strings.Contains(msg, "insufficient fabric") {
		t.Fatalf("backend detail not surfaced: %v", out)
	}
	if out["failed_school"] != "Liceo del Norte" {
		t.Fatalf("failed school: got %v", out["failed_school"])
	}
	results := out["results"].([]any)
	if len(results) != 1 {
		t.Fatalf("expected the confirmed prefix (1 order), got %d", len(results))
	}

	// The first school's order stands and is journaled
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM submissions`); err != nil {
		t.Fatalf("count journal: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 journaled order, got %d", n)
	}

	// The draft is kept for rework, items included
	_, view := s.doJSON("GET", "/api/v1/draft/", nil)
	if got := int64(view["total"].(float64)); got != 200000 {
		t.Fatalf("draft lost after partial failure: total=%d", got)
	}
}

func TestDraftRejectsAdvanceOverTotal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("backend should not be called")
	}))
	defer srv.Close()

	app, _ := newPOSApp(t, srv.URL)
	s := &posSession{t: t, app: app}

	resp, body := s.doJSON("POST", "/api/v1/draft/items/custom", map[string]any{
		"garment_type_id": "falda",
		"school_id":       "liceo-norte",
		"quantity":        1,
		"unit_price":      10000,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add custom: got %d body=%v", resp.StatusCode, body)
	}
	resp, _ = s.doJSON("PUT", "/api/v1/draft/", map[string]any{
		"client_id":              "cl-0001",
		"advance_payment":        20000,
		"advance_payment_method": "nequi",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set meta: got %d", resp.StatusCode)
	}

	resp, out := s.doJSON("POST", "/api/v1/draft/submit", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if msg, _ := out["error"].(string); !strings.Contains(msg, "exceeds the order total") {
		t.Fatalf("wrong error: %v", out)
	}
}

func TestDraftRemoveItemRecomputesTotal(t *testing.T) {
	app, _ := newPOSApp(t, "http://backend.invalid")
	s := &posSession{t: t, app: app}

	_, it := s.doJSON("POST", "/api/v1/draft/items/custom", map[string]any{
		"garment_type_id": "camisa",
		"school_id":       "col-sanjose",
		"quantity":        3,
		"unit_price":      10000,
	})
	tempID, _ := it["temp_id"].(string)
	if tempID == "" {
		t.Fatalf("no temp_id in created item: %v", it)
	}

	resp, out := s.doJSON("DELETE", "/api/v1/draft/items/"+tempID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove: got %d", resp.StatusCode)
	}
	if out["removed"] != true || int64(out["total"].(float64)) != 0 {
		t.Fatalf("remove result wrong: %v", out)
	}

	// Unknown ids are a no-op
	resp, out = s.doJSON("DELETE", "/api/v1/draft/items/nope", nil)
	if resp.StatusCode != http.StatusOK || out["removed"] != false {
		t.Fatalf("unknown id should be a no-op: %d %v", resp.StatusCode, out)
	}
}
