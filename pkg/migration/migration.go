// Package migration tracks schema migrations in a database table and
// applies them in batches, newest batch first on rollback.
//
// Migrations register themselves at init time under a timestamp-prefixed
// name (see database/migrations) and run through the crmd CLI:
//
//	crmd migrate             apply everything pending
//	crmd migrate:rollback    undo the most recent batch
//	crmd migrate:status      show what ran and what is pending
package migration

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/charvi/pkg/logger"
)

// Migration is one reversible schema change.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

// record tracks one applied migration.
type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "charvi_migrations" }

type registered struct {
	name string
	m    Migration
}

var registry []registered

// Register adds a migration under name. Names carry a timestamp prefix
// ("20260101000000_create_customers_table") so lexicographic order is
// chronological order.
func Register(name string, m Migration) {
	registry = append(registry, registered{name: name, m: m})
}

// Runner applies and reverts registered migrations against one database.
type Runner struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Runner { return &Runner{db: db} }

// Run applies every pending migration as one batch.
func (r *Runner) Run() error {
	if err := r.ensureTable(); err != nil {
		return err
	}

	pending, err := r.pending()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("Nothing to migrate.")
		return nil
	}

	batch := r.lastBatch() + 1
	for _, reg := range pending {
		logger.Info("migration: applying", "name", reg.name, "batch", batch)
		fmt.Printf("Migrating: %s\n", reg.name)

		if err := reg.m.Up(r.db); err != nil {
			return fmt.Errorf("migration: %s up: %w", reg.name, err)
		}
		if err := r.db.Create(&record{Name: reg.name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration: record %s: %w", reg.name, err)
		}
	}

	fmt.Printf("Migrated %d migration(s), batch %d.\n", len(pending), batch)
	return nil
}

// Rollback reverts every migration of the most recent batch, newest
// first.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return err
	}

	batch := r.lastBatch()
	if batch == 0 {
		fmt.Println("Nothing to roll back.")
		return nil
	}

	var applied []record
	if err := r.db.Where("batch = ?", batch).Order("id desc").Find(&applied).Error; err != nil {
		return err
	}

	byName := make(map[string]Migration, len(registry))
	for _, reg := range registry {
		byName[reg.name] = reg.m
	}

	for _, rec := range applied {
		m, ok := byName[rec.Name]
		if !ok {
			return fmt.Errorf("migration: %s is recorded but not registered", rec.Name)
		}

		logger.Info("migration: reverting", "name", rec.Name)
		fmt.Printf("Rolling back: %s\n", rec.Name)

		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("migration: %s down: %w", rec.Name, err)
		}
		if err := r.db.Delete(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

// Status prints each registered migration with its applied batch.
func (r *Runner) Status() error {
	if err := r.ensureTable(); err != nil {
		return err
	}

	var applied []record
	if err := r.db.Find(&applied).Error; err != nil {
		return err
	}
	byName := make(map[string]record, len(applied))
	for _, rec := range applied {
		byName[rec.Name] = rec
	}

	fmt.Printf("%-60s  %-8s  %s\n", "Migration", "Status", "Batch")
	fmt.Println(strings.Repeat("-", 80))
	for _, reg := range registry {
		if rec, ok := byName[reg.name]; ok {
			fmt.Printf("%-60s  %-8s  %d\n", reg.name, "ran", rec.Batch)
		} else {
			fmt.Printf("%-60s  %-8s  -\n", reg.name, "pending")
		}
	}
	return nil
}

func (r *Runner) ensureTable() error {
	if err := r.db.AutoMigrate(&record{}); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}
	return nil
}

func (r *Runner) pending() ([]registered, error) {
	var applied []record
	if err := r.db.Find(&applied).Error; err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(applied))
	for _, rec := range applied {
		done[rec.Name] = true
	}

	var out []registered
	for _, reg := range registry {
		if !done[reg.name] {
			out = append(out, reg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

func (r *Runner) lastBatch() int {
	var row struct{ Max int }
	r.db.Model(&record{}).Select("MAX(batch) as max").Scan(&row)
	return row.Max
}
