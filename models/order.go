package models

// ═══════════════════════════════════════════════════════════
// Order payload (dropshipping submission)
// ═══════════════════════════════════════════════════════════

// OrderLine is one submitted line. Price is intentionally absent: supplier
// pricing is governed by the dropshipping agreement, not by this payload.
type OrderLine struct {
	SKU      string `json:"sku"`
	Colour   string `json:"colour"`
	Quantity int    `json:"quantity"`
}

// Customer holds the buyer fields carried on the order payload.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Order is the transient dropshipping payload: assembled at checkout,
// submitted to the supplier, never persisted.
type Order struct {
	OrderID   string      `json:"orderId"`
	LineItems []OrderLine `json:"lineItems"`
	Customer  Customer    `json:"customer"`
}

// ═══════════════════════════════════════════════════════════
// Request models
// ═══════════════════════════════════════════════════════════

type AddCartItemRequest struct {
	SKU      string `json:"sku" binding:"required" example:"RV-CLASSIC-01"`
	Color    string `json:"color" binding:"required" example:"Matte Black"`
	Quantity int    `json:"quantity" binding:"required,min=1" example:"1"`
}

type CheckoutRequest struct {
	Name    string `json:"name" binding:"required" example:"Customer Name"`
	Email   string `json:"email" binding:"required,email" example:"customer@example.com"`
	Address string `json:"address" binding:"required" example:"123 Main St, Caldwell, TX"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email" example:"customer@example.com"`
}
