package partControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// ExportPartsToExcel streams the whole catalog as an xlsx download.
func ExportPartsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var parts []models.Part
		if err := db.Preload("Categories").Find(&parts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch parts"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Parts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Brand", "Model", "CatalogNumber", "Application",
			"Availability", "PriceExclVAT", "PriceInclVAT", "DiscountPercent",
			"Image", "CategoryIDs", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range parts {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Model)
			row.AddCell().SetValue(p.CatalogNumber)
			row.AddCell().SetValue(p.Application)
			row.AddCell().SetValue(string(p.Availability))
			row.AddCell().SetValue(p.PriceExclVAT)
			row.AddCell().SetValue(p.PriceInclVAT)
			row.AddCell().SetValue(p.DiscountPercent)
			row.AddCell().SetValue(p.Image)

			var catIDs []string
			for _, cat := range p.Categories {
				catIDs = append(catIDs, strconv.Itoa(int(cat.ID)))
			}
			row.AddCell().SetValue(strings.Join(catIDs, ","))

			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=parts.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
