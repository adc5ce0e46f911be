package cart_controller

import (
	"errors"
	"net/http"

	"github.com/aaronwins356/RoveShopV2/models"
	"github.com/aaronwins356/RoveShopV2/storage"
	"github.com/aaronwins356/RoveShopV2/utils"
	"github.com/gin-gonic/gin"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Add a (sku, colour) line to the cart, merging quantity into an existing matching line
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 400 {object} models.ApiResponse "Invalid request or unknown colour"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Cart storage unavailable"
// @Router /store/cart/items [post]
func AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	// Resolve the product server-side: price and display name always come
	// from the catalog, never from the request body.
	product, found := catalog.GetProduct(c.Request.Context(), req.SKU)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	if !product.HasColor(req.Color) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Colour not available for this product"))
		return
	}

	cartID := utils.CartID(c)
	cart, err := carts.Add(c.Request.Context(), cartID, product.SKU, req.Color, product.Price, product.Name, req.Quantity)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Cart storage unavailable"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, product.Name+" added to cart", cart.View()))
}
