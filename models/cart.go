package models

import "time"

// CartLine is a denormalized snapshot of a Part at the moment it was added,
// plus a quantity. The snapshot is frozen: later catalog edits do not touch
// lines already in a cart.
type CartLine struct {
	PartID          uint    `json:"partId"`
	Name            string  `json:"name"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	CatalogNumber   string  `json:"catalogNumber"`
	Availability    string  `json:"availability"`
	PriceExclVAT    float64 `json:"priceExclVat"`
	PriceInclVAT    float64 `json:"priceInclVat"`
	DiscountPercent float64 `json:"discountPercent"`
	Image           string  `json:"image"`
	Quantity        int     `json:"quantity"` // always >= 1
}

// NewCartLine snapshots a catalog part into a cart line.
func NewCartLine(p Part, quantity int) CartLine {
	return CartLine{
		PartID:          p.ID,
		Name:            p.Name,
		Brand:           p.Brand,
		Model:           p.Model,
		CatalogNumber:   p.CatalogNumber,
		Availability:    string(p.Availability),
		PriceExclVAT:    p.PriceExclVAT,
		PriceInclVAT:    p.PriceInclVAT,
		DiscountPercent: p.DiscountPercent,
		Image:           p.Image,
		Quantity:        quantity,
	}
}

// CartRecord is the relational fallback tier for persisted carts: one row per
// cart key, payload is the JSON-serialized []CartLine.
type CartRecord struct {
	Key       string `gorm:"primaryKey;size:128"`
	Payload   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
