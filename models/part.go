package models

import (
	"time"

	"gorm.io/gorm"
)

// Availability describes how quickly a part can be delivered.
type Availability string

const (
	AvailabilityInStock     Availability = "dostupno"
	AvailabilityFifteenDays Availability = "15dana"
	AvailabilityOnRequest   Availability = "po-narudzbi"
)

type Part struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Brand           string         `json:"brand"`
	Model           string         `json:"model"`
	CatalogNumber   string         `gorm:"index" json:"catalogNumber"`
	Application     string         `json:"application"` // which machines the part fits
	Availability    Availability   `gorm:"default:dostupno" json:"availability"`
	PriceExclVAT    float64        `json:"priceExclVat"`
	PriceInclVAT    float64        `gorm:"not null" json:"priceInclVat"`
	DiscountPercent float64        `json:"discountPercent"` // catalog display discount, 0-100
	Image           string         `json:"image"`
	Spec1           string         `json:"spec1"`
	Spec2           string         `json:"spec2"`
	Spec3           string         `json:"spec3"`
	Spec4           string         `json:"spec4"`
	Spec5           string         `json:"spec5"`
	Spec6           string         `json:"spec6"`
	Spec7           string         `json:"spec7"`
	Categories      []Category     `gorm:"many2many:part_categories;" json:"categories"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
