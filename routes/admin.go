package routes

import (
	"github.com/gin-gonic/gin"

	partControllers "github.com/vojniknikola-ui/strojopromet-api/controllers/part"
	"github.com/vojniknikola-ui/strojopromet-api/middleware"
)

// SetupAdminRoutes registers the cookie-gated catalog management endpoints.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")
	api.Use(middleware.RequireAdmin)
	{
		// ──────────────── Part Management ────────────────
		api.POST("/parts", partControllers.CreatePart(deps.DB))
		api.PUT("/parts/:id", partControllers.UpdatePart(deps.DB))
		api.DELETE("/parts/:id", partControllers.DeletePart(deps.DB))
		api.GET("/admin/parts/export", partControllers.ExportPartsToExcel(deps.DB))

		// ──────────────── Category Management ────────────────
		api.POST("/categories", partControllers.CreateCategory(deps.DB))
		api.PUT("/categories/:id", partControllers.UpdateCategory(deps.DB))
		api.DELETE("/categories/:id", partControllers.DeleteCategory(deps.DB))
	}
}
