package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/aaronwins356/RoveShopV2/models"
	"github.com/google/uuid"
)

// ErrEmptyCart rejects checkout before any submission is attempted.
var ErrEmptyCart = errors.New("cart is empty")

// OrderService assembles dropshipping order payloads from cart snapshots.
// Orders are transient: assembled, submitted, discarded.
type OrderService struct {
	now func() time.Time
}

func NewOrderService() *OrderService {
	return &OrderService{now: time.Now}
}

// AssembleOrder turns the cart into a supplier order. It refuses an empty
// cart, keeps one order line per cart line in cart order, and carries only
// sku/colour/quantity per line — supplier pricing is not part of the payload.
func (s *OrderService) AssembleOrder(cart models.Cart, customer models.Customer) (models.Order, error) {
	if len(cart.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	lines := make([]models.OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, models.OrderLine{
			SKU:      item.SKU,
			Colour:   item.Color,
			Quantity: item.Quantity,
		})
	}

	return models.Order{
		OrderID:   s.newOrderID(),
		LineItems: lines,
		Customer:  customer,
	}, nil
}

// newOrderID keeps the RV-<epoch ms> scheme and appends a short random
// suffix so two checkouts landing in the same millisecond stay distinct.
func (s *OrderService) newOrderID() string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("RV-%d-%s", s.now().UnixMilli(), suffix)
}
