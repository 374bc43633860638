// Package seeders fills a fresh database with sample CRM data. Each
// seeder registers itself from init and `crmd seed` runs them in
// order.
package seeders

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// SeederFunc inserts one slice of sample data.
type SeederFunc func(db *gorm.DB) error

type seeder struct {
	name string
	fn   SeederFunc
}

var (
	mu       sync.Mutex
	registry []seeder
)

// Register queues fn to run under the given name. Call it from init in
// the file that defines the seeder.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, seeder{name: name, fn: fn})
}

// RunAll executes the registered seeders in registration order and
// stops at the first failure.
func RunAll(db *gorm.DB) error {
	mu.Lock()
	pending := append([]seeder(nil), registry...)
	mu.Unlock()

	if len(pending) == 0 {
		fmt.Println("no seeders registered")
		return nil
	}

	for _, s := range pending {
		fmt.Printf("seeding %s ... ", s.name)
		if err := s.fn(db); err != nil {
			fmt.Println("failed")
			return fmt.Errorf("seeder %q: %w", s.name, err)
		}
		fmt.Println("done")
	}
	return nil
}
