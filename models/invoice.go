package models

import "time"

// Invoice is an immutable proforma record. Rows are only ever inserted; the
// sequential number is derived from the count of prior rows at insert time.
type Invoice struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Number       string `gorm:"uniqueIndex;not null"` // e.g. PR-0042
	CompanyName  string `gorm:"not null"`
	TaxID        string
	VATID        string
	ContactName  string
	Address      string
	CartSnapshot string  `gorm:"type:text"` // JSON-serialized []CartLine
	TotalAmount  float64 `gorm:"not null"`
	Document     []byte  `gorm:"type:bytea"` // rendered PDF
	CreatedAt    time.Time
}
