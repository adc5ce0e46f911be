package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaronwins356/RoveShopV2/models"
)

func testOrder() models.Order {
	return models.Order{
		OrderID: "RV-1700000000000-abcd1234",
		LineItems: []models.OrderLine{
			{SKU: "RV-CLASSIC-01", Colour: "Tortoise", Quantity: 2},
		},
		Customer: models.Customer{Name: "Customer Name", Email: "customer@example.com", Address: "123 Main St"},
	}
}

func TestSendOrderStubMode(t *testing.T) {
	client := NewSupplierClient("", "")
	if err := client.SendOrder(context.Background(), testOrder()); err != nil {
		t.Fatalf("stub mode should succeed, got %v", err)
	}
}

func TestSendOrderPostsPayload(t *testing.T) {
	var received models.Order
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing auth header, got %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewSupplierClient(server.URL, "secret")
	if err := client.SendOrder(context.Background(), testOrder()); err != nil {
		t.Fatalf("SendOrder: %v", err)
	}

	if received.OrderID != "RV-1700000000000-abcd1234" {
		t.Errorf("order id = %q", received.OrderID)
	}
	if len(received.LineItems) != 1 || received.LineItems[0].Colour != "Tortoise" {
		t.Errorf("line items = %+v", received.LineItems)
	}
}

func TestSendOrderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewSupplierClient(server.URL, "")
	if err := client.SendOrder(context.Background(), testOrder()); err == nil {
		t.Fatal("expected error on non-2xx supplier response")
	}
}
