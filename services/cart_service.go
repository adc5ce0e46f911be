package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaronwins356/RoveShopV2/models"
	"github.com/aaronwins356/RoveShopV2/storage"
)

// cartKeyPrefix namespaces cart records in the shared store. The v2 suffix
// is carried over from the storefront's previous cart format.
const cartKeyPrefix = "rove_cart_v2:"

// CartService owns the canonical cart state for each visitor. Every mutation
// reads the persisted cart, applies the change and writes it back before
// returning, so a reported success always matches what is stored.
//
// Two tabs sharing one cart ID are not coordinated: last write wins. That is
// the same contract the storage-shared cart has always had.
type CartService struct {
	store storage.Store
}

func NewCartService(store storage.Store) *CartService {
	return &CartService{store: store}
}

func cartKey(cartID string) string {
	return cartKeyPrefix + cartID
}

// Read loads the visitor's cart. A missing record is an empty cart; so is a
// corrupt one — unreadable persisted state is recovered from, not surfaced.
func (s *CartService) Read(ctx context.Context, cartID string) models.Cart {
	raw, err := s.store.Get(ctx, cartKey(cartID))
	if err != nil {
		return models.Cart{Items: []models.CartItem{}}
	}

	var cart models.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return models.Cart{Items: []models.CartItem{}}
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart
}

// Add puts qty units of (sku, colour) into the cart. A line with the exact
// same SKU and colour absorbs the quantity; anything else appends a new line
// at the end. The updated cart is persisted before it is returned.
func (s *CartService) Add(ctx context.Context, cartID, sku, colour string, unitPrice float64, name string, qty int) (models.Cart, error) {
	if qty < 1 {
		return models.Cart{}, fmt.Errorf("quantity must be positive, got %d", qty)
	}

	cart := s.Read(ctx, cartID)
	if idx := cart.IndexOf(sku, colour); idx >= 0 {
		cart.Items[idx].Quantity += qty
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			SKU:      sku,
			Name:     name,
			Price:    unitPrice,
			Color:    colour,
			Quantity: qty,
		})
	}

	if err := s.persist(ctx, cartID, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// RemoveLine removes the line matching (sku, colour). Removing a line that
// is not present leaves the cart untouched.
func (s *CartService) RemoveLine(ctx context.Context, cartID, sku, colour string) (models.Cart, error) {
	cart := s.Read(ctx, cartID)
	idx := cart.IndexOf(sku, colour)
	if idx < 0 {
		return cart, nil
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	if err := s.persist(ctx, cartID, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// ErrLineNotFound reports a positional removal that matched no line.
var ErrLineNotFound = errors.New("cart line not found")

// RemoveAt removes the line at a zero-based position. The position is only a
// view-layer convenience: it is resolved to the line's (sku, colour) identity
// and the removal goes through RemoveLine, so a stale index can never take
// out a different line than the one it resolves to here. Out-of-range
// positions are rejected without touching the cart.
func (s *CartService) RemoveAt(ctx context.Context, cartID string, position int) (models.Cart, error) {
	cart := s.Read(ctx, cartID)
	if position < 0 || position >= len(cart.Items) {
		return cart, ErrLineNotFound
	}
	line := cart.Items[position]
	return s.RemoveLine(ctx, cartID, line.SKU, line.Color)
}

// Clear persists an empty cart unconditionally.
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.persist(ctx, cartID, models.Cart{Items: []models.CartItem{}})
}

func (s *CartService) persist(ctx context.Context, cartID string, cart models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, cartKey(cartID), raw)
}
