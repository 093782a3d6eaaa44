package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vojniknikola-ui/strojopromet-api/gateway"
	"github.com/vojniknikola-ui/strojopromet-api/models"
	"github.com/vojniknikola-ui/strojopromet-api/order"
	"github.com/vojniknikola-ui/strojopromet-api/pricing"
)

const (
	cookieName   = "cartId"
	cookieMaxAge = 30 * 24 * 60 * 60 // 30 days
)

// GET /api/cart
// Reads the cart identifier from the cookie and falls through
// blob → relational → empty. Always answers 200.
func GetCart(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := c.Cookie(cookieName)
		if err != nil || cartID == "" {
			c.JSON(http.StatusOK, []models.CartLine{})
			return
		}
		c.JSON(http.StatusOK, gw.Read(c.Request.Context(), cartID))
	}
}

// POST /api/cart
// Persists the posted cart lines and (re)sets the cart cookie. Tier failures
// are absorbed by the gateway; the response is success either way because the
// client keeps its local copy.
func SaveCart(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lines []models.CartLine
		if err := c.ShouldBindJSON(&lines); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart payload: " + err.Error()})
			return
		}

		cartID, err := c.Cookie(cookieName)
		if err != nil || cartID == "" {
			cartID = gateway.NewCartID()
		}

		gw.Write(c.Request.Context(), cartID, lines)

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, cartID, cookieMaxAge, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /api/cart
// Best-effort removal from both tiers, then the cookie is cleared regardless
// of tier outcomes.
func ClearCart(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cartID, err := c.Cookie(cookieName); err == nil && cartID != "" {
			gw.Delete(c.Request.Context(), cartID)
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GET /api/cart/order-links
// Composes the order message from the persisted cart and returns the
// WhatsApp/Viber handoff links.
func OrderLinks(gw *gateway.Gateway, storePhone string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := c.Cookie(cookieName)
		if err != nil || cartID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		lines := gw.Read(c.Request.Context(), cartID)
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		message := order.Compose(lines, pricing.Compute(lines))
		c.JSON(http.StatusOK, gin.H{
			"message":  message,
			"whatsapp": order.WhatsAppLink(storePhone, message),
			"viber":    order.ViberLink(message),
		})
	}
}
