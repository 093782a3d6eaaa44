package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vojniknikola-ui/strojopromet-api/models"
)

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "PR-0001", FormatNumber(0))
	require.Equal(t, "PR-0042", FormatNumber(41))
	require.Equal(t, "PR-1000", FormatNumber(999))
	require.Equal(t, "PR-10000", FormatNumber(9999)) // grows past the pad
}

func TestFilename(t *testing.T) {
	require.Equal(t, "predracun-PR-0042.pdf", Filename("PR-0042"))
}

func TestCustomerDetails_Validate(t *testing.T) {
	full := CustomerDetails{
		CompanyName: "Gradnja d.o.o.",
		TaxID:       "4200000000001",
		VATID:       "200000000001",
		ContactName: "Amir Hodžić",
		Address:     "Sarajevska 1, Zenica",
	}
	require.NoError(t, full.Validate())

	missing := full
	missing.VATID = ""
	err := missing.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "vatId")

	require.Error(t, CustomerDetails{}.Validate())
}

func TestRenderPDF(t *testing.T) {
	lines := []models.CartLine{
		{PartID: 1, Name: "Filter ulja za mini bager, dugačak naziv", Brand: "Komatsu", Model: "PC30", CatalogNumber: "X1", PriceInclVAT: 45.50, Quantity: 2},
		{PartID: 2, Name: "Remen", Brand: "Yanmar", Model: "B25", CatalogNumber: "R9", PriceInclVAT: 12.00, Quantity: 1},
	}
	customer := CustomerDetails{
		CompanyName: "Gradnja d.o.o.",
		TaxID:       "4200000000001",
		VATID:       "200000000001",
		ContactName: "Amir Hodžić",
		Address:     "Sarajevska 1, Zenica",
	}

	doc, err := RenderPDF("PR-0001", time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), lines, customer, 103.00)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	require.Greater(t, len(doc), 1000)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "Remen", truncate("Remen", 22))
	require.Len(t, []rune(truncate("Filter ulja za mini bager i utovarivač", 22)), 22)
	require.Equal(t, "čćžšđ", truncate("čćžšđ", 5)) // rune-safe
}
