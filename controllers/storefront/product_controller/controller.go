package product_controller

import (
	"github.com/aaronwins356/RoveShopV2/services"
)

var catalog *services.CatalogService

// Init wires the catalog accessor. Called once from main before routes are
// registered.
func Init(c *services.CatalogService) {
	catalog = c
}
