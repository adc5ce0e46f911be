package checkout_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/aaronwins356/RoveShopV2/models"
	"github.com/aaronwins356/RoveShopV2/services"
	"github.com/aaronwins356/RoveShopV2/utils"
	"github.com/gin-gonic/gin"
)

var (
	carts    *services.CartService
	orders   *services.OrderService
	supplier *services.SupplierClient
)

// Init wires the checkout dependencies. Called once from main before routes
// are registered.
func Init(cartSvc *services.CartService, orderSvc *services.OrderService, supplierClient *services.SupplierClient) {
	carts = cartSvc
	orders = orderSvc
	supplier = supplierClient
}

// Checkout godoc
// @Summary Place the order
// @Description Assemble the dropshipping order from the cart, submit it to the supplier and clear the cart on confirmed success
// @Tags checkout
// @Accept json
// @Produce json
// @Param customer body models.CheckoutRequest true "Customer details"
// @Success 200 {object} models.ApiResponse{data=object{order_id=string}}
// @Failure 400 {object} models.ApiResponse "Invalid customer details or empty cart"
// @Failure 502 {object} models.ApiResponse "Supplier submission failed"
// @Router /store/checkout [post]
func Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	cartID := utils.CartID(c)
	cart := carts.Read(c.Request.Context(), cartID)

	order, err := orders.AssembleOrder(cart, models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Your cart is empty. Please add some products first."))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to assemble order"))
		return
	}

	// Two-phase: the cart is only cleared once the supplier confirmed the
	// submission. A failed submission leaves the cart exactly as it was.
	if err := supplier.SendOrder(c.Request.Context(), order); err != nil {
		log.Printf("❌ Order %s submission failed: %v", order.OrderID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Order could not be submitted, your cart has been kept"))
		return
	}

	if err := carts.Clear(c.Request.Context(), cartID); err != nil {
		// The order is already placed; a stale cart is the lesser harm.
		log.Printf("⚠️ Order %s placed but cart %s could not be cleared: %v", order.OrderID, cartID, err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Thank you for your purchase! Your order has been placed.", gin.H{
		"order_id": order.OrderID,
	}))
}
