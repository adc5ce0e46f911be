package product_controller

import (
	"net/http"

	"github.com/aaronwins356/RoveShopV2/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductBySKU godoc
// @Summary Get single product details for storefront
// @Description Get detailed product information by SKU for the product page
// @Tags store
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{sku} [get]
func GetStorefrontProductBySKU(c *gin.Context) {
	sku := c.Param("sku")

	product, found := catalog.GetProduct(c.Request.Context(), sku)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
