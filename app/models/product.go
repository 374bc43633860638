package models

import "gorm.io/gorm"

// Product represents a product in the catalogue. Stock is only ever
// changed by the low-stock restock operation; it must never go negative.
type Product struct {
	gorm.Model
	Name  string  `gorm:"size:255;not null;index" json:"name"`
	Price float64 `gorm:"not null"               json:"price"`
	Stock int     `gorm:"not null;default:0"     json:"stock"`
}
