package models

type Category struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"unique;not null" json:"name"`
	Slug  string `gorm:"unique;not null" json:"slug"`
	Image string `json:"image"`
	Parts []Part `gorm:"many2many:part_categories" json:"parts,omitempty"`
}
