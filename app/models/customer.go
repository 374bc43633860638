package models

import "gorm.io/gorm"

// Customer is a CRM customer record. Customers are immutable after
// creation; only new rows are ever written.
type Customer struct {
	gorm.Model
	Name  string `gorm:"size:255;not null"      json:"name"`
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone string `gorm:"size:20"                json:"phone,omitempty"`
}
