// Package orm is a thin fluent wrapper over GORM. It exists so the
// repository layer reads like a query builder.
package orm

import (
	"github.com/shashiranjanraj/charvi/pkg/database"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

// DB starts a query against the global connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// New starts a query against an explicit connection, typically a
// transaction handle or a test database.
func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(expr string) *Query {
	return &Query{db: q.db.Order(expr)}
}

func (q *Query) Preload(association string) *Query {
	return &Query{db: q.db.Preload(association)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

// First loads a single record. Callers translate gorm.ErrRecordNotFound
// into their own not-found semantics.
func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Count(n *int64) error {
	return q.db.Count(n).Error
}

func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

// Gorm exposes the underlying handle for operations the wrapper does not
// model (association writes, row locking clauses).
func (q *Query) Gorm() *gorm.DB {
	return q.db
}

// Transaction runs fn inside a single database transaction. A non-nil
// error from fn rolls everything back.
func (q *Query) Transaction(fn func(tx *Query) error) error {
	return q.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
