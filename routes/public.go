package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vojniknikola-ui/strojopromet-api/auth"
	cartControllers "github.com/vojniknikola-ui/strojopromet-api/controllers/cart"
	invoiceControllers "github.com/vojniknikola-ui/strojopromet-api/controllers/invoice"
	partControllers "github.com/vojniknikola-ui/strojopromet-api/controllers/part"
)

// SetupPublicRoutes registers the storefront endpoints: catalog browsing,
// the cart, order handoff and invoice generation.
func SetupPublicRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")
	{
		// ──────────────── Catalog ────────────────
		api.GET("/parts", partControllers.GetParts(deps.DB))
		api.GET("/parts/:id", partControllers.GetPartByID(deps.DB))
		api.GET("/categories", partControllers.GetAllCategories(deps.DB))

		// ──────────────── Cart ────────────────
		api.GET("/cart", cartControllers.GetCart(deps.Gateway))
		api.POST("/cart", cartControllers.SaveCart(deps.Gateway))
		api.DELETE("/cart", cartControllers.ClearCart(deps.Gateway))
		api.GET("/cart/order-links", cartControllers.OrderLinks(deps.Gateway, deps.StorePhone))

		// ──────────────── Invoices ────────────────
		api.POST("/generate-invoice", invoiceControllers.GenerateInvoice(deps.Invoices))
		api.GET("/invoices/:number/document", invoiceControllers.DownloadInvoice(deps.Invoices))

		// ──────────────── Admin session ────────────────
		api.POST("/admin/login", auth.Login())
		api.POST("/admin/logout", auth.Logout())
	}
}
