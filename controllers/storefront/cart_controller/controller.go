package cart_controller

import (
	"github.com/aaronwins356/RoveShopV2/services"
)

var (
	carts   *services.CartService
	catalog *services.CatalogService
)

// Init wires the cart store and the catalog accessor. Called once from main
// before routes are registered.
func Init(cartSvc *services.CartService, catalogSvc *services.CatalogService) {
	carts = cartSvc
	catalog = catalogSvc
}
