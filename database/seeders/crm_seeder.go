package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/charvi/app/models"
)

func init() {
	Register("customers", SeedCustomers)
	Register("products", SeedProducts)
}

// SeedCustomers replaces all customers with the sample set.
func SeedCustomers(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(&models.Customer{}).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
	}
	return db.Create(&customers).Error
}

// SeedProducts replaces all products with the sample set.
func SeedProducts(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(&models.Product{}).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Laptop", Price: 999.99, Stock: 10},
		{Name: "Mouse", Price: 25.50, Stock: 100},
	}
	return db.Create(&products).Error
}
