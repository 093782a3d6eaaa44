package invoiceControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vojniknikola-ui/strojopromet-api/invoice"
	"github.com/vojniknikola-ui/strojopromet-api/models"
)

type GenerateInvoiceRequest struct {
	CartItems      []models.CartLine       `json:"cartItems" binding:"required"`
	CartTotal      float64                 `json:"cartTotal"`
	CompanyDetails invoice.CustomerDetails `json:"companyDetails"`
}

// POST /api/generate-invoice
func GenerateInvoice(svc *invoice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateInvoiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := req.CompanyDetails.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		number, _, err := svc.Generate(c.Request.Context(), req.CartItems, req.CompanyDetails, req.CartTotal)
		if err != nil {
			if errors.Is(err, invoice.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"invoiceNumber": number,
			"message":       "Predračun " + number + " je generisan",
		})
	}
}

// GET /api/invoices/:number/document
func DownloadInvoice(svc *invoice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		number := c.Param("number")

		document, err := svc.Document(c.Request.Context(), number)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoice"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename="+invoice.Filename(number))
		c.Data(http.StatusOK, "application/pdf", document)
	}
}
