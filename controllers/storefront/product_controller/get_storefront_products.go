package product_controller

import (
	"net/http"

	"github.com/aaronwins356/RoveShopV2/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Get the full product catalog for the shop grid
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	// Catalog failures degrade to an empty grid; the accessor logs them.
	products := catalog.FetchCatalog(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
