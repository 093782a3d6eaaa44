// Package order turns a cart into the plain-text order message sent to the
// shop over WhatsApp or Viber.
package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vojniknikola-ui/strojopromet-api/models"
	"github.com/vojniknikola-ui/strojopromet-api/pricing"
)

// Compose renders the order message. The layout is fixed: one line per cart
// line in cart order, the pricing block, an optional discount line when a
// bulk discount applies, and the closing request for a quote.
func Compose(lines []models.CartLine, pr pricing.Result) string {
	var b strings.Builder

	b.WriteString("Narudžba:\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("%s (%s) - %d kom x %.2f BAM = %.2f BAM\n",
			l.Name, l.CatalogNumber, l.Quantity, l.PriceInclVAT, pricing.LineTotal(l)))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Osnovica: %.2f BAM\n", pr.Subtotal))
	b.WriteString(fmt.Sprintf("PDV (17%%): %.2f BAM\n", pr.VATAmount))
	b.WriteString(fmt.Sprintf("Ukupno prije popusta: %.2f BAM\n", pr.TotalBeforeDiscount))
	if pr.BulkDiscountPercent > 0 {
		b.WriteString(fmt.Sprintf("Popust (%.0f%%): -%.2f BAM\n",
			pr.BulkDiscountPercent, pr.BulkDiscountAmount))
	}
	b.WriteString(fmt.Sprintf("UKUPNO: %.2f BAM\n", pr.FinalTotal))

	b.WriteString("\nMolimo da date ponudu.")
	return b.String()
}

// WhatsAppLink builds the wa.me deep link carrying the message.
func WhatsAppLink(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + encodeText(message)
}

// ViberLink builds the viber forward deep link carrying the message.
func ViberLink(message string) string {
	return "viber://forward?text=" + encodeText(message)
}

// encodeText percent-encodes like the browsers' encodeURIComponent: spaces
// become %20, not +.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
