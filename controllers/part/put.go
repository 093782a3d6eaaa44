package partControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// UpdatePart replaces a part's fields and category associations. Cart lines
// holding an older snapshot of the part are not touched.
func UpdatePart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid part ID"})
			return
		}

		var input PartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var part models.Part
		if err := db.First(&part, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Part not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve part"})
			}
			return
		}

		input.apply(&part)

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&part).Error; err != nil {
				return err
			}
			if input.CategoryIDs != nil {
				var categories []models.Category
				if len(input.CategoryIDs) > 0 {
					if err := tx.Where("id IN ?", input.CategoryIDs).Find(&categories).Error; err != nil {
						return err
					}
				}
				if err := tx.Model(&part).Association("Categories").Replace(categories); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update part"})
			return
		}

		c.JSON(http.StatusOK, part)
	}
}
