package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vojniknikola-ui/strojopromet-api/gateway"
	"github.com/vojniknikola-ui/strojopromet-api/invoice"
)

// Deps carries everything the route groups need.
type Deps struct {
	DB         *gorm.DB
	Gateway    *gateway.Gateway
	Invoices   *invoice.Service
	StorePhone string
}

// SetupRoutes is the single entry point that wires up the public storefront
// and the admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupPublicRoutes(r, deps)
	SetupAdminRoutes(r, deps)
}
