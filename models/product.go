package models

// Product is a single catalog entry as published by the catalog source
// (products.json or the configured catalog URL). The storefront consumes it
// read-only; there is no create/update path.
type Product struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Colors      []string `json:"colors"`
	Description string   `json:"description"`
	Weight      float64  `json:"weight"`
	Dimensions  string   `json:"dimensions"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image,omitempty"`
}

// HasColor reports whether colour is one of the product's declared variants.
func (p Product) HasColor(colour string) bool {
	for _, c := range p.Colors {
		if c == colour {
			return true
		}
	}
	return false
}
