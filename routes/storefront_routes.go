package routes

import (
	"github.com/aaronwins356/RoveShopV2/controllers/storefront/cart_controller"
	"github.com/aaronwins356/RoveShopV2/controllers/storefront/checkout_controller"
	"github.com/aaronwins356/RoveShopV2/controllers/storefront/newsletter_controller"
	"github.com/aaronwins356/RoveShopV2/controllers/storefront/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", product_controller.GetStorefrontProducts)          // Shop grid
		products.GET("/:sku", product_controller.GetStorefrontProductBySKU) // Product detail
	}

	// Cart routes
	cart := store.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", cart_controller.AddCartItem)
		cart.DELETE("/items/:index", cart_controller.RemoveCartItem)
	}

	// Checkout + newsletter
	store.POST("/checkout", checkout_controller.Checkout)
	store.POST("/newsletter", newsletter_controller.Subscribe)
}
