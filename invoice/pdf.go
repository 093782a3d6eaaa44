package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// Company block printed in the header band.
const (
	companyName    = "Strojopromet d.o.o."
	companyContact = "Tel: +387 61 234 567 | info@strojopromet.ba"
)

var footerLines = [4]string{
	"Predračun važi 7 dana od dana izdavanja.",
	"Cijene su izražene u BAM sa uračunatim PDV-om.",
	"Plaćanje po predračunu na žiro račun preduzeća.",
	"Hvala na povjerenju!",
}

// RenderPDF produces the fixed-layout proforma document: colored header
// band, metadata and customer boxes, the line-item table with alternating
// shading, total line and the four-line footer.
func RenderPDF(number string, issued time.Time, lines []models.CartLine, customer CustomerDetails, total float64) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(21, 67, 96)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(12, 7)
	pdf.CellFormat(0, 8, tr(companyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetX(12)
	pdf.CellFormat(0, 5, tr(companyContact), "", 1, "L", false, 0, "")

	// Title
	pdf.SetTextColor(21, 67, 96)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(12, 36)
	pdf.CellFormat(0, 8, tr("PREDRAČUN"), "", 1, "L", false, 0, "")

	// Metadata box
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(130, 36)
	pdf.CellFormat(68, 6, tr("Broj: "+number), "1", 2, "L", false, 0, "")
	pdf.CellFormat(68, 6, tr("Datum: "+issued.Format("02.01.2006")), "LR", 2, "L", false, 0, "")
	pdf.CellFormat(68, 6, tr("Važi do: "+issued.AddDate(0, 0, 7).Format("02.01.2006")), "1", 1, "L", false, 0, "")

	// Customer box
	pdf.SetXY(12, 60)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, tr("Kupac:"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range []string{
		customer.CompanyName,
		"ID broj: " + customer.TaxID,
		"PDV broj: " + customer.VATID,
		"Kontakt: " + customer.ContactName,
		"Adresa: " + customer.Address,
	} {
		pdf.SetX(12)
		pdf.CellFormat(0, 5.5, tr(row), "", 1, "L", false, 0, "")
	}

	// Line-item table
	type col struct {
		width float64
		title string
		align string
	}
	cols := []col{
		{10, "#", "C"},
		{62, "Naziv", "L"},
		{46, "Marka/Model", "L"},
		{18, "Kol.", "C"},
		{25, "Cijena", "R"},
		{25, "Ukupno", "R"},
	}

	pdf.SetY(96)
	pdf.SetX(12)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(21, 67, 96)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, tr(c.title), "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, l := range lines {
		shaded := i%2 == 1
		pdf.SetFillColor(234, 239, 243)
		pdf.SetX(12)
		cells := []string{
			fmt.Sprintf("%d", i+1),
			truncate(l.Name, 22),
			truncate(l.Brand+" "+l.Model, 15),
			fmt.Sprintf("%d", l.Quantity),
			currency(l.PriceInclVAT),
			currency(l.PriceInclVAT * float64(l.Quantity)),
		}
		for j, c := range cols {
			pdf.CellFormat(c.width, 6.5, tr(cells[j]), "1", 0, c.align, shaded, 0, "")
		}
		pdf.Ln(-1)
	}

	// Total line
	pdf.SetX(12)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(136, 8, tr("UKUPNO ZA PLATITI"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, tr(currency(total)), "1", 1, "R", false, 0, "")

	// Footer
	pdf.SetY(-42)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(90, 90, 90)
	for _, row := range footerLines {
		pdf.SetX(12)
		pdf.CellFormat(0, 4.5, tr(row), "", 1, "C", false, 0, "")
	}
	pdf.SetDrawColor(21, 67, 96)
	pdf.Line(12, 283, 198, 283)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice document: %w", err)
	}
	return buf.Bytes(), nil
}

func currency(v float64) string {
	return fmt.Sprintf("%.2f BAM", v)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
