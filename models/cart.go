package models

// CartItem is one line of a visitor's cart. Price and name are captured at
// add-time from the catalog; they are not re-fetched afterwards.
type CartItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Color    string  `json:"color"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price × quantity for the line.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is an ordered sequence of lines. Ordering is insertion order and is
// user-visible (cart table rows). At most one line exists per (SKU, Color)
// pair; Add on the cart service merges into quantity.
type Cart struct {
	Items []CartItem `json:"items"`
}

// ItemCount returns the sum of quantities across all lines, 0 for an empty cart.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of line subtotals, 0 for an empty cart.
func (c Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// IndexOf returns the position of the line matching (sku, colour), or -1.
func (c Cart) IndexOf(sku, colour string) int {
	for i, item := range c.Items {
		if item.SKU == sku && item.Color == colour {
			return i
		}
	}
	return -1
}

// ═══════════════════════════════════════════════════════════
// Display models (cart page)
// ═══════════════════════════════════════════════════════════

// CartItemView is a display-ready cart row with its computed subtotal.
type CartItemView struct {
	Index    int     `json:"index"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// CartView is the cart page payload: rows, total and badge count. It is
// derived from a Cart snapshot on every call and never cached, so it cannot
// go stale relative to its input.
type CartView struct {
	Items     []CartItemView `json:"items"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"item_count"`
}

// View builds the display aggregates for the cart.
func (c Cart) View() CartView {
	view := CartView{
		Items:     make([]CartItemView, 0, len(c.Items)),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
	for i, item := range c.Items {
		view.Items = append(view.Items, CartItemView{
			Index:    i,
			SKU:      item.SKU,
			Name:     item.Name,
			Color:    item.Color,
			Price:    item.Price,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal(),
		})
	}
	return view
}
