package cart_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aaronwins356/RoveShopV2/models"
	"github.com/aaronwins356/RoveShopV2/services"
	"github.com/aaronwins356/RoveShopV2/storage"
	"github.com/aaronwins356/RoveShopV2/utils"
	"github.com/gin-gonic/gin"
)

// RemoveCartItem godoc
// @Summary Remove a cart row
// @Description Remove the cart line at the given zero-based row index
// @Tags cart
// @Produce json
// @Param index path int true "Zero-based row index"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 400 {object} models.ApiResponse "Invalid or out-of-range index"
// @Failure 500 {object} models.ApiResponse "Cart storage unavailable"
// @Router /store/cart/items/{index} [delete]
func RemoveCartItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart row index"))
		return
	}

	cartID := utils.CartID(c)
	cart, err := carts.RemoveAt(c.Request.Context(), cartID, index)
	if err != nil {
		if errors.Is(err, services.ErrLineNotFound) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart row does not exist"))
			return
		}
		if errors.Is(err, storage.ErrUnavailable) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Cart storage unavailable"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", cart.View()))
}
