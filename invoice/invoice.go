// Package invoice issues sequentially numbered proforma invoices: it renders
// the PDF, persists the immutable record and mails the document to the shop
// operator.
package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// CustomerDetails is the buyer block printed on the invoice. All five fields
// are required; validation happens at the HTTP boundary.
type CustomerDetails struct {
	CompanyName string `json:"companyName"`
	TaxID       string `json:"taxId"`
	VATID       string `json:"vatId"`
	ContactName string `json:"contactName"`
	Address     string `json:"address"`
}

// Validate reports the first missing required field.
func (d CustomerDetails) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"companyName", d.CompanyName},
		{"taxId", d.TaxID},
		{"vatId", d.VATID},
		{"contactName", d.ContactName},
		{"address", d.Address},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("missing required field: %s", f.name)
		}
	}
	return nil
}

// Mailer delivers a rendered invoice to the operator.
type Mailer interface {
	SendInvoice(to, number string, document []byte) error
}

// Service generates invoices. Generation succeeds once the document is
// rendered and the row is written; a failed email delivery is logged and
// does not fail the request.
type Service struct {
	db            *gorm.DB
	mailer        Mailer
	operatorEmail string
}

func NewService(db *gorm.DB, mailer Mailer, operatorEmail string) *Service {
	return &Service{db: db, mailer: mailer, operatorEmail: operatorEmail}
}

var ErrEmptyCart = errors.New("cannot generate an invoice for an empty cart")

// Generate renders the document, persists the invoice row and mails the PDF.
// The number is derived from the count of prior rows inside the same
// transaction, so concurrent generations cannot read the same prior count.
func (s *Service) Generate(ctx context.Context, lines []models.CartLine, customer CustomerDetails, total float64) (string, []byte, error) {
	if len(lines) == 0 {
		return "", nil, ErrEmptyCart
	}

	snapshot, err := json.Marshal(lines)
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize cart snapshot: %w", err)
	}

	var number string
	var document []byte

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var priorCount int64
		if err := tx.Model(&models.Invoice{}).Count(&priorCount).Error; err != nil {
			return fmt.Errorf("failed to count prior invoices: %w", err)
		}
		number = FormatNumber(priorCount)

		document, err = RenderPDF(number, time.Now(), lines, customer, total)
		if err != nil {
			return err
		}

		record := models.Invoice{
			Number:       number,
			CompanyName:  customer.CompanyName,
			TaxID:        customer.TaxID,
			VATID:        customer.VATID,
			ContactName:  customer.ContactName,
			Address:      customer.Address,
			CartSnapshot: string(snapshot),
			TotalAmount:  total,
			Document:     document,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to persist invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendInvoice(s.operatorEmail, number, document); err != nil {
			log.Printf("⚠️ Invoice %s generated but email delivery failed: %v", number, err)
		}
	}

	return number, document, nil
}

// Document loads the stored PDF for a previously generated invoice.
func (s *Service) Document(ctx context.Context, number string) ([]byte, error) {
	var record models.Invoice
	if err := s.db.WithContext(ctx).First(&record, "number = ?", number).Error; err != nil {
		return nil, err
	}
	return record.Document, nil
}

// Filename is the download name for an invoice document.
func Filename(number string) string {
	return "predracun-" + number + ".pdf"
}
