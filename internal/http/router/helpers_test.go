package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	handler "github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/router"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

var fixedNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	router   http.Handler
	products *repo.InMemoryProductRepository
	restocks *repo.InMemoryRestockRepository
}

func newTestEnv(t *testing.T, opts router.Options) *testEnv {
	t.Helper()
	products := repo.NewInMemoryProductRepository()
	restocks := repo.NewInMemoryRestockRepository(products)
	restocks.SetClock(func() time.Time { return fixedNow })

	srv := handler.NewServer(&repo.Store{Products: products, Restocks: restocks}, nil)
	srv.SetClock(func() time.Time { return fixedNow })

	return &testEnv{
		router:   router.NewRouter(srv, opts),
		products: products,
		restocks: restocks,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func (e *testEnv) do(method, path string, body any, headers ...http.Header) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if len(headers) > 0 {
		for k, v := range headers[0] {
			req.Header[k] = v
		}
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seed(t *testing.T, products ...models.Product) []models.Product {
	t.Helper()
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		created, err := e.products.Create(context.Background(), p)
		if err != nil {
			t.Fatalf("seeding product failed: %v", err)
		}
		out = append(out, created)
	}
	return out
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response: %v (body %q)", err, w.Body.String())
	}
	return v
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("expected status %d, got %d (body %q)", code, w.Code, w.Body.String())
	}
	resp := decode[handler.ErrorResponse](t, w)
	if message != "" && resp.Error != message {
		t.Errorf("expected error %q, got %q", message, resp.Error)
	}
}
