package repositories

import (
	"fmt"

	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/pkg/orm"
	"gorm.io/gorm/clause"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	q *orm.Query
}

func NewProductRepository(q *orm.Query) *ProductRepository {
	return &ProductRepository{q: q}
}

var productOrderColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	NameContains string
	PriceGte     *float64
	PriceLte     *float64
	StockGte     *int
	StockLte     *int
	LowStock     bool // stock below the restock threshold
}

// LowStockThreshold is the stock level under which a product qualifies
// for restocking.
const LowStockThreshold = 10

// FindByIDs returns the products whose ids exist, in id order. Missing
// ids are silently absent from the result; callers that need a strict
// match compare lengths.
func (r *ProductRepository) FindByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := r.q.Model(&models.Product{}).Where("id IN ?", ids).Order("id ASC").Get(&products)
	if err != nil {
		return nil, fmt.Errorf("products: find by ids: %w", err)
	}
	return products, nil
}

// Create persists a new product record.
func (r *ProductRepository) Create(p *models.Product) error {
	if err := r.q.Create(p); err != nil {
		return fmt.Errorf("products: create: %w", err)
	}
	return nil
}

// Save persists changes to an existing product.
func (r *ProductRepository) Save(p *models.Product) error {
	if err := r.q.Save(p); err != nil {
		return fmt.Errorf("products: save: %w", err)
	}
	return nil
}

// FindLowStockForUpdate selects all products with stock below threshold,
// taking row locks so a concurrent restock in another transaction blocks
// until this one commits. SQLite has no row-level locks; its writes are
// serialized by the database lock, so the clause is skipped there.
func (r *ProductRepository) FindLowStockForUpdate(threshold int) ([]models.Product, error) {
	db := r.q.Gorm()
	if db.Dialector.Name() != "sqlite" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var products []models.Product
	err := db.Where("stock < ?", threshold).Order("id ASC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("products: find low stock: %w", err)
	}
	return products, nil
}

// List returns every product matching the filter, ordered by the given
// key.
func (r *ProductRepository) List(f ProductFilter, orderBy string) ([]models.Product, error) {
	orderExpr, ok := OrderClause(orderBy, productOrderColumns)
	if !ok {
		return nil, fmt.Errorf("products: %w: %q", ErrUnknownOrderKey, orderBy)
	}

	q := r.q.Model(&models.Product{})
	if f.NameContains != "" {
		q = q.Where("name LIKE ?", "%"+f.NameContains+"%")
	}
	if f.PriceGte != nil {
		q = q.Where("price >= ?", *f.PriceGte)
	}
	if f.PriceLte != nil {
		q = q.Where("price <= ?", *f.PriceLte)
	}
	if f.StockGte != nil {
		q = q.Where("stock >= ?", *f.StockGte)
	}
	if f.StockLte != nil {
		q = q.Where("stock <= ?", *f.StockLte)
	}
	if f.LowStock {
		q = q.Where("stock < ?", LowStockThreshold)
	}
	if orderExpr != "" {
		q = q.Order(orderExpr)
	}

	var products []models.Product
	if err := q.Get(&products); err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}
	return products, nil
}
