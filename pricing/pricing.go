package pricing

import "github.com/vojniknikola-ui/strojopromet-api/models"

// VATRate is the fixed PDV rate. Catalog prices are VAT-inclusive; the rate is
// only used to back-compute the base and VAT portions for display.
const VATRate = 0.17

// Bulk discount tiers, inclusive lower bounds on the pre-discount grand total.
const (
	bulkTierHigh        = 5000.0
	bulkTierHighPercent = 5.0
	bulkTierLow         = 2000.0
	bulkTierLowPercent  = 3.0
)

// Result is the full pricing breakdown for a cart. It is derived on every
// read and never stored.
type Result struct {
	Subtotal            float64 `json:"subtotal"` // osnovica, excl. VAT
	VATAmount           float64 `json:"vatAmount"`
	TotalBeforeDiscount float64 `json:"totalBeforeDiscount"`
	BulkDiscountPercent float64 `json:"bulkDiscountPercent"`
	BulkDiscountAmount  float64 `json:"bulkDiscountAmount"`
	FinalTotal          float64 `json:"finalTotal"`
}

// LineTotal is the VAT-inclusive total for a single cart line.
func LineTotal(l models.CartLine) float64 {
	return l.PriceInclVAT * float64(l.Quantity)
}

// BulkDiscountPercent returns the discount tier for a pre-discount grand total.
func BulkDiscountPercent(total float64) float64 {
	switch {
	case total >= bulkTierHigh:
		return bulkTierHighPercent
	case total >= bulkTierLow:
		return bulkTierLowPercent
	default:
		return 0
	}
}

// Compute derives the pricing breakdown from cart lines. An empty cart yields
// an all-zero result. Values are not rounded here; rounding happens only when
// a value is formatted for output.
func Compute(lines []models.CartLine) Result {
	var total float64
	for _, l := range lines {
		total += LineTotal(l)
	}

	subtotal := total / (1 + VATRate)
	percent := BulkDiscountPercent(total)
	discount := total * percent / 100

	return Result{
		Subtotal:            subtotal,
		VATAmount:           total - subtotal,
		TotalBeforeDiscount: total,
		BulkDiscountPercent: percent,
		BulkDiscountAmount:  discount,
		FinalTotal:          total - discount,
	}
}
