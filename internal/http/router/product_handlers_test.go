package router_test

import (
	"context"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/router"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	env := newTestEnv(t, router.Options{})

	w := env.do(http.MethodPost, "/api/products", map[string]any{
		"name": "Widget", "sku": "W-1", "stock_level": 7, "category": "tools", "price": 2.5, "cost": 1.25,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	resp := decode[handler.ProductResponse](t, w)
	if resp.Id == 0 {
		t.Error("expected an assigned id")
	}
	if resp.Name != "Widget" || resp.SKU != "W-1" || resp.StockLevel != 7 {
		t.Errorf("unexpected product %+v", resp)
	}
	if resp.Category == nil || *resp.Category != "tools" {
		t.Errorf("expected category 'tools', got %v", resp.Category)
	}
	if resp.Price == nil || *resp.Price != 2.5 {
		t.Errorf("expected price 2.5, got %v", resp.Price)
	}
}

func TestCreateProductHandler_Defaults(t *testing.T) {
	env := newTestEnv(t, router.Options{})

	w := env.do(http.MethodPost, "/api/products", map[string]any{"name": "Bare", "sku": "B-1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	raw := decode[map[string]any](t, w)
	if raw["stock_level"] != float64(0) {
		t.Errorf("expected stock_level 0, got %v", raw["stock_level"])
	}
	for _, field := range []string{"category", "price", "cost"} {
		v, present := raw[field]
		if !present {
			t.Errorf("expected %s to be present", field)
		}
		if v != nil {
			t.Errorf("expected %s to be null, got %v", field, v)
		}
	}
}

func TestCreateProductHandler_MissingFields(t *testing.T) {
	env := newTestEnv(t, router.Options{})

	tests := []struct {
		name    string
		payload any
		message string
	}{
		{"missing name", map[string]any{"sku": "X-1"}, "Missing field 'name'"},
		{"null name", map[string]any{"name": nil, "sku": "X-1"}, "Missing field 'name'"},
		{"missing sku", map[string]any{"name": "X"}, "Missing field 'sku'"},
		{"empty object", map[string]any{}, "Missing field 'name'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/api/products", tt.payload)
			expectError(t, w, http.StatusBadRequest, tt.message)
		})
	}

	all, _ := env.products.GetAll(context.Background())
	if len(all) != 0 {
		t.Errorf("expected no products to be created, got %d", len(all))
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	env := newTestEnv(t, router.Options{})

	w := env.do(http.MethodPost, "/api/products", `{"name": "Invalid" "sku": }`)
	expectError(t, w, http.StatusBadRequest, "invalid JSON body")
}

func TestGetProductsHandler(t *testing.T) {
	env := newTestEnv(t, router.Options{})

	w := env.do(http.MethodGet, "/api/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty array, got %q", body)
	}

	env.seed(t,
		models.Product{Name: "A", SKU: "A-1", StockLevel: 1},
		models.Product{Name: "B", SKU: "B-1", StockLevel: 2},
	)

	w = env.do(http.MethodGet, "/api/products", nil)
	resp := decode[[]handler.ProductResponse](t, w)
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	env := newTestEnv(t, router.Options{})
	seeded := env.seed(t, models.Product{Name: "Lamp", SKU: "L-1", StockLevel: 3, Price: ptr(9.99)})

	w := env.do(http.MethodGet, "/api/products/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	resp := decode[handler.ProductResponse](t, w)
	if resp.Id != seeded[0].ID || resp.Name != "Lamp" {
		t.Errorf("unexpected product %+v", resp)
	}
}

func TestProductRoutes_NotFound(t *testing.T) {
	env := newTestEnv(t, router.Options{})

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/products/999999", nil},
		{http.MethodPut, "/api/products/999999", map[string]any{"name": "X", "sku": "X"}},
		{http.MethodPut, "/api/products/999999", map[string]any{}},
		{http.MethodDelete, "/api/products/999999", nil},
		{http.MethodPost, "/api/products/999999/restock", map[string]any{"quantity": 5}},
		{http.MethodPost, "/api/products/999999/restock", map[string]any{}},
		{http.MethodGet, "/api/analytics/product-trend/999999", nil},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := env.do(tt.method, tt.path, tt.body)
			expectError(t, w, http.StatusNotFound, "product not found")
		})
	}
}

func TestProductRoutes_NonNumericID(t *testing.T) {
	env := newTestEnv(t, router.Options{})

	w := env.do(http.MethodGet, "/api/products/abc", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestUpdateProductHandler(t *testing.T) {
	env := newTestEnv(t, router.Options{})
	env.seed(t, models.Product{Name: "Old", SKU: "O-1", StockLevel: 12, Category: ptr("misc"), Price: ptr(4.0)})

	w := env.do(http.MethodPut, "/api/products/1", map[string]any{"name": "New", "sku": "N-1", "price": 5.5})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp := decode[handler.ProductResponse](t, w)
	if resp.Name != "New" || resp.SKU != "N-1" {
		t.Errorf("expected name and sku to be replaced, got %+v", resp)
	}
	if resp.StockLevel != 12 {
		t.Errorf("expected stock_level to be kept at 12, got %d", resp.StockLevel)
	}
	if resp.Category != nil {
		t.Errorf("expected omitted category to be cleared, got %v", *resp.Category)
	}

	w = env.do(http.MethodPut, "/api/products/1", map[string]any{"name": "New", "sku": "N-1", "stock_level": 40})
	resp = decode[handler.ProductResponse](t, w)
	if resp.StockLevel != 40 {
		t.Errorf("expected stock_level 40, got %d", resp.StockLevel)
	}
}

func TestUpdateProductHandler_MissingField(t *testing.T) {
	env := newTestEnv(t, router.Options{})
	env.seed(t, models.Product{Name: "Keep", SKU: "K-1"})

	w := env.do(http.MethodPut, "/api/products/1", map[string]any{"name": "Only"})
	expectError(t, w, http.StatusBadRequest, "Missing field 'sku'")

	p, _ := env.products.GetByID(context.Background(), 1)
	if p.Name != "Keep" {
		t.Errorf("expected product to be unchanged, got %+v", p)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	env := newTestEnv(t, router.Options{})
	env.seed(t, models.Product{Name: "Gone", SKU: "G-1", StockLevel: 1})
	if _, err := env.restocks.Restock(context.Background(), 1, 2); err != nil {
		t.Fatalf("restock failed: %v", err)
	}

	w := env.do(http.MethodDelete, "/api/products/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}

	w = env.do(http.MethodGet, "/api/products/1", nil)
	expectError(t, w, http.StatusNotFound, "product not found")

	w = env.do(http.MethodGet, "/api/restocks", nil)
	logs := decode[[]handler.RestockLogResponse](t, w)
	if len(logs) != 1 {
		t.Errorf("expected restock log to survive product deletion, got %d logs", len(logs))
	}
}

func TestLowStockProductsHandler(t *testing.T) {
	env := newTestEnv(t, router.Options{})
	env.seed(t,
		models.Product{Name: "Empty", SKU: "E", StockLevel: 0},
		models.Product{Name: "Nine", SKU: "N", StockLevel: 9},
		models.Product{Name: "Ten", SKU: "T", StockLevel: 10},
		models.Product{Name: "Many", SKU: "M", StockLevel: 100},
		models.Product{Name: "Negative", SKU: "NEG", StockLevel: -3},
	)

	w := env.do(http.MethodGet, "/api/products/low-stock", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	resp := decode[[]handler.ProductResponse](t, w)

	got := map[string]bool{}
	for _, p := range resp {
		got[p.SKU] = true
	}
	want := []string{"E", "N", "NEG"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, sku := range want {
		if !got[sku] {
			t.Errorf("expected %s in low stock list", sku)
		}
	}
}
