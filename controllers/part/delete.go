package partControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// DeletePart soft-deletes a catalog part.
func DeletePart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid part ID"})
			return
		}

		result := db.Delete(&models.Part{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete part"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Part not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
