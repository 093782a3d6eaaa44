package partControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

type PartInput struct {
	Name            string  `json:"name" binding:"required"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	CatalogNumber   string  `json:"catalogNumber"`
	Application     string  `json:"application"`
	Availability    string  `json:"availability"`
	PriceExclVAT    float64 `json:"priceExclVat"`
	PriceInclVAT    float64 `json:"priceInclVat" binding:"required"`
	DiscountPercent float64 `json:"discountPercent"`
	Image           string  `json:"image"`
	Spec1           string  `json:"spec1"`
	Spec2           string  `json:"spec2"`
	Spec3           string  `json:"spec3"`
	Spec4           string  `json:"spec4"`
	Spec5           string  `json:"spec5"`
	Spec6           string  `json:"spec6"`
	Spec7           string  `json:"spec7"`
	CategoryIDs     []uint  `json:"categoryIds"`
}

func (in PartInput) apply(part *models.Part) {
	part.Name = in.Name
	part.Brand = in.Brand
	part.Model = in.Model
	part.CatalogNumber = in.CatalogNumber
	part.Application = in.Application
	if in.Availability != "" {
		part.Availability = models.Availability(in.Availability)
	}
	part.PriceExclVAT = in.PriceExclVAT
	part.PriceInclVAT = in.PriceInclVAT
	part.DiscountPercent = in.DiscountPercent
	part.Image = in.Image
	part.Spec1, part.Spec2, part.Spec3, part.Spec4 = in.Spec1, in.Spec2, in.Spec3, in.Spec4
	part.Spec5, part.Spec6, part.Spec7 = in.Spec5, in.Spec6, in.Spec7
}

// CreatePart creates a new catalog part with its categories.
func CreatePart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var categories []models.Category
		if len(input.CategoryIDs) > 0 {
			if err := db.Where("id IN ?", input.CategoryIDs).Find(&categories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
		}

		var part models.Part
		input.apply(&part)
		part.Categories = categories

		if err := db.Create(&part).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create part"})
			return
		}
		c.JSON(http.StatusCreated, part)
	}
}
