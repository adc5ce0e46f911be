package newsletter_controller

import (
	"log"
	"net/http"

	"github.com/aaronwins356/RoveShopV2/models"
	"github.com/gin-gonic/gin"
)

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Accept a newsletter signup. No subscriber state is kept.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body models.NewsletterRequest true "Subscriber email"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid email"
// @Router /store/newsletter [post]
func Subscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A valid email address is required"))
		return
	}

	log.Printf("Newsletter signup: %s", req.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Thanks for subscribing, "+req.Email+"!", nil))
}
