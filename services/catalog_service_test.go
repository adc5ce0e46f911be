package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

const catalogDoc = `[
  {"sku": "RV-CLASSIC-01", "name": "ROVE Classic", "price": 89, "colors": ["Matte Black", "Tortoise"]},
  {"sku": "RV-AVIATOR-02", "name": "ROVE Aviator", "price": 109, "colors": ["Gold"]}
]`

func TestCatalogFetchMemoizes(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(catalogDoc))
	}))
	defer server.Close()

	svc := NewCatalogService(server.URL, "")
	ctx := context.Background()

	first := svc.FetchCatalog(ctx)
	second := svc.FetchCatalog(ctx)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 products, got %d then %d", len(first), len(second))
	}
	if hits.Load() != 1 {
		t.Errorf("expected exactly one source read, got %d", hits.Load())
	}
}

func TestCatalogFetchFailureDegradesAndRetries(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(catalogDoc))
	}))
	defer server.Close()

	svc := NewCatalogService(server.URL, "")
	ctx := context.Background()

	// First read fails: empty result, failure is not cached.
	if products := svc.FetchCatalog(ctx); len(products) != 0 {
		t.Fatalf("expected empty catalog on failure, got %d products", len(products))
	}

	// Next call re-attempts and succeeds.
	if products := svc.FetchCatalog(ctx); len(products) != 2 {
		t.Fatalf("expected retry to load 2 products, got %d", len(products))
	}
	if hits.Load() != 2 {
		t.Errorf("expected 2 source reads, got %d", hits.Load())
	}
}

func TestCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(catalogDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewCatalogService("", path)

	products := svc.FetchCatalog(context.Background())
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].SKU != "RV-CLASSIC-01" || products[0].Price != 89 {
		t.Errorf("unexpected first product: %+v", products[0])
	}
}

func TestCatalogGetProduct(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(catalogDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	svc := NewCatalogService("", path)
	ctx := context.Background()

	product, found := svc.GetProduct(ctx, "RV-AVIATOR-02")
	if !found {
		t.Fatal("expected product to be found")
	}
	if product.Name != "ROVE Aviator" {
		t.Errorf("name = %q, want ROVE Aviator", product.Name)
	}

	if _, found := svc.GetProduct(ctx, "RV-NOPE-99"); found {
		t.Error("expected unknown SKU to be absent")
	}
}
