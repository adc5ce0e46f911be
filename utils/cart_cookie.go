package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cartCookieName = "rove_cart_id"
	// One year. The cart belongs to the browsing context, not a session.
	cartCookieMaxAge = 365 * 24 * 60 * 60
)

// CartID returns the visitor's cart identifier, issuing a fresh one in a
// cookie on first contact. Every browsing context gets its own cart key.
func CartID(c *gin.Context) string {
	if id, err := c.Cookie(cartCookieName); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cartCookieName, id, cartCookieMaxAge, "/", "", false, true)
	return id
}
