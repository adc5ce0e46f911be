package cart_controller

import (
	"net/http"

	"github.com/aaronwins356/RoveShopV2/models"
	"github.com/aaronwins356/RoveShopV2/utils"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the visitor's cart
// @Description Get cart rows with line subtotals, cart total and item count
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	cartID := utils.CartID(c)

	cart := carts.Read(c.Request.Context(), cartID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cart.View()))
}
