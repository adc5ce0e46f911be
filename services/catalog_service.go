package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/aaronwins356/RoveShopV2/models"
)

// CatalogService fetches the product list from the catalog source and keeps
// it memoized for the rest of the process lifetime. The catalog is immutable
// for a session, so the memo is never invalidated; a failed fetch is never
// cached, so a later call may retry.
//
// There is deliberately no lock held across the fetch itself: if two fetches
// race before the memo is set, both run and the last write wins. Re-fetching
// is idempotent, so this is harmless.
type CatalogService struct {
	sourceURL  string
	sourceFile string
	httpClient *http.Client

	mu       sync.RWMutex
	products []models.Product
	loaded   bool
}

// NewCatalogService builds an accessor for the given source. When sourceURL
// is set it wins over sourceFile.
func NewCatalogService(sourceURL, sourceFile string) *CatalogService {
	return &CatalogService{
		sourceURL:  sourceURL,
		sourceFile: sourceFile,
		httpClient: &http.Client{},
	}
}

// FetchCatalog returns the full product list. The first successful call
// performs the external read; subsequent calls return the memoized result.
// On failure it logs and returns an empty list rather than an error: the
// shop page degrades to an empty grid instead of crashing.
func (s *CatalogService) FetchCatalog(ctx context.Context) []models.Product {
	s.mu.RLock()
	if s.loaded {
		products := s.products
		s.mu.RUnlock()
		return products
	}
	s.mu.RUnlock()

	products, err := s.load(ctx)
	if err != nil {
		log.Printf("❌ Failed to load products: %v", err)
		return []models.Product{}
	}

	s.mu.Lock()
	s.products = products
	s.loaded = true
	s.mu.Unlock()

	return products
}

// GetProduct looks up a single product by SKU.
func (s *CatalogService) GetProduct(ctx context.Context, sku string) (models.Product, bool) {
	for _, p := range s.FetchCatalog(ctx) {
		if p.SKU == sku {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *CatalogService) load(ctx context.Context) ([]models.Product, error) {
	var raw []byte
	var err error

	if s.sourceURL != "" {
		raw, err = s.loadURL(ctx)
	} else {
		raw, err = os.ReadFile(s.sourceFile)
	}
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("invalid catalog document: %w", err)
	}
	return products, nil
}

func (s *CatalogService) loadURL(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
