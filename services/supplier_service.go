package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/aaronwins356/RoveShopV2/models"
)

// SupplierClient submits assembled orders to the dropshipping supplier
// (Wohu Optical). Without a configured endpoint it only logs the prepared
// payload, which is all the demo integration ever did; checkout still treats
// that as a confirmed submission so the flow stays usable end to end.
type SupplierClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewSupplierClient builds the client. An empty endpoint selects stub mode.
func NewSupplierClient(endpoint, apiKey string) *SupplierClient {
	return &SupplierClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// SendOrder delivers the order payload and reports the outcome. Callers must
// not treat the order as placed until this returns nil.
func (s *SupplierClient) SendOrder(ctx context.Context, order models.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order payload: %w", err)
	}

	if s.endpoint == "" {
		log.Printf("Dropshipping payload prepared: %s", payload)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supplier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("supplier rejected order %s: status %d", order.OrderID, resp.StatusCode)
	}

	log.Printf("✅ Order %s accepted by supplier", order.OrderID)
	return nil
}
