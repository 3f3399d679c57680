package models

import "gorm.io/gorm"

// Product is a catalog entry. Prices are integer minor-currency units.
// Deactivation is soft: historical order line items keep referencing the row.
type Product struct {
	gorm.Model
	Name           string `json:"name" gorm:"not null"`
	Price          int64  `json:"price" gorm:"not null"`
	Description    string `json:"description"`
	PhotoReference string `json:"photo_reference"`
	IsActive       bool   `json:"is_active" gorm:"not null;default:true"`
}
