package models

import (
	"time"

	"gorm.io/gorm"
)

// Order links a customer to the products they bought. TotalAmount is a
// snapshot of the product prices at creation time and is never
// recomputed, even if prices change later.
type Order struct {
	gorm.Model
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	Customer    Customer  `json:"customer"`
	Products    []Product `gorm:"many2many:order_products" json:"products"`
	TotalAmount float64   `gorm:"not null"       json:"total_amount"`
	OrderDate   time.Time `gorm:"not null;index" json:"order_date"`
}
