package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vojniknikola-ui/strojopromet-api/models"
)

func line(price float64, qty int) models.CartLine {
	return models.CartLine{PriceInclVAT: price, Quantity: qty}
}

func TestCompute_EmptyCart(t *testing.T) {
	res := Compute(nil)
	require.Equal(t, Result{}, res)
}

func TestCompute_SmallOrderNoDiscount(t *testing.T) {
	res := Compute([]models.CartLine{line(100, 2), line(50, 1)})

	require.InDelta(t, 250.00, res.TotalBeforeDiscount, 0.001)
	require.Equal(t, 0.0, res.BulkDiscountPercent)
	require.Equal(t, 0.0, res.BulkDiscountAmount)
	require.InDelta(t, 250.00, res.FinalTotal, 0.001)

	// base + VAT re-sum to the inclusive total
	require.InDelta(t, res.TotalBeforeDiscount, res.Subtotal+res.VATAmount, 0.001)
	require.InDelta(t, 213.68, res.Subtotal, 0.005)
}

func TestCompute_LowerTierBoundary(t *testing.T) {
	res := Compute([]models.CartLine{line(2000, 1)})
	require.Equal(t, 3.0, res.BulkDiscountPercent)
	require.InDelta(t, 60.00, res.BulkDiscountAmount, 0.001)
	require.InDelta(t, 1940.00, res.FinalTotal, 0.001)

	res = Compute([]models.CartLine{line(1999.99, 1)})
	require.Equal(t, 0.0, res.BulkDiscountPercent)
	require.InDelta(t, 1999.99, res.FinalTotal, 0.001)
}

func TestCompute_UpperTierBoundary(t *testing.T) {
	res := Compute([]models.CartLine{line(5000, 1)})
	require.Equal(t, 5.0, res.BulkDiscountPercent)
	require.InDelta(t, 250.00, res.BulkDiscountAmount, 0.001)
	require.InDelta(t, 4750.00, res.FinalTotal, 0.001)

	res = Compute([]models.CartLine{line(4999.99, 1)})
	require.Equal(t, 3.0, res.BulkDiscountPercent)
}

func TestBulkDiscountPercent_Tiers(t *testing.T) {
	cases := []struct {
		total   float64
		percent float64
	}{
		{0, 0},
		{1999.99, 0},
		{2000, 3},
		{4999.99, 3},
		{5000, 5},
		{123456.78, 5},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("total_%.2f", tc.total), func(t *testing.T) {
			require.Equal(t, tc.percent, BulkDiscountPercent(tc.total))
		})
	}
}

func TestLineTotal(t *testing.T) {
	require.InDelta(t, 91.00, LineTotal(line(45.50, 2)), 0.001)
}
