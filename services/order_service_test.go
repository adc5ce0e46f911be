package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/aaronwins356/RoveShopV2/models"
)

func TestAssembleOrderEmptyCart(t *testing.T) {
	svc := NewOrderService()

	_, err := svc.AssembleOrder(models.Cart{}, models.Customer{Name: "x"})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestAssembleOrderMapsLines(t *testing.T) {
	svc := NewOrderService()
	cart := models.Cart{Items: []models.CartItem{
		{SKU: "A", Name: "Classic", Color: "red", Price: 10, Quantity: 1},
		{SKU: "B", Name: "Aviator", Color: "blue", Price: 20, Quantity: 2},
	}}
	customer := models.Customer{
		Name:    "Customer Name",
		Email:   "customer@example.com",
		Address: "123 Main St, Caldwell, TX",
	}

	order, err := svc.AssembleOrder(cart, customer)
	if err != nil {
		t.Fatalf("AssembleOrder: %v", err)
	}

	if len(order.LineItems) != len(cart.Items) {
		t.Fatalf("expected %d order lines, got %d", len(cart.Items), len(order.LineItems))
	}
	for i, line := range order.LineItems {
		item := cart.Items[i]
		if line.SKU != item.SKU || line.Colour != item.Color || line.Quantity != item.Quantity {
			t.Errorf("line %d = %+v, want sku=%s colour=%s qty=%d", i, line, item.SKU, item.Color, item.Quantity)
		}
	}
	if order.Customer != customer {
		t.Errorf("customer = %+v, want %+v", order.Customer, customer)
	}
}

func TestOrderIDFormat(t *testing.T) {
	svc := NewOrderService()
	cart := models.Cart{Items: []models.CartItem{{SKU: "A", Color: "red", Quantity: 1}}}

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		order, err := svc.AssembleOrder(cart, models.Customer{})
		if err != nil {
			t.Fatalf("AssembleOrder: %v", err)
		}
		if !strings.HasPrefix(order.OrderID, "RV-") {
			t.Fatalf("order id %q missing RV- prefix", order.OrderID)
		}
		if seen[order.OrderID] {
			t.Fatalf("duplicate order id %q", order.OrderID)
		}
		seen[order.OrderID] = true
	}
}
