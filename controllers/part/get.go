package partControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// GetPartByID returns a single part with its categories.
// URL param: /api/parts/:id
func GetPartByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid part ID"})
			return
		}

		var part models.Part
		if err := db.Preload("Categories").First(&part, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Part not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve part"})
			}
			return
		}
		c.JSON(http.StatusOK, part)
	}
}
