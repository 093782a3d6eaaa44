package partControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// GetParts lists catalog parts with optional filtering and sorting.
// Query params: q (free text), category_id, availability, sort_by, order.
func GetParts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("q")
		categoryID := c.Query("category_id")
		availability := c.Query("availability")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		query := db.Model(&models.Part{}).Preload("Categories")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(`
				name ILIKE ? OR brand ILIKE ? OR model ILIKE ? OR catalog_number ILIKE ? OR application ILIKE ?
			`, likePattern, likePattern, likePattern, likePattern, likePattern)
		}

		if availability != "" {
			query = query.Where("availability = ?", availability)
		}

		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.
					Joins("JOIN part_categories pc ON pc.part_id = parts.id").
					Where("pc.category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
		var parts []models.Part
		if err := query.Order(orderClause).Find(&parts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch parts"})
			return
		}
		c.JSON(http.StatusOK, parts)
	}
}
