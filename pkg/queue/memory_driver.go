package queue

import (
	"context"
	"errors"
)

// MemoryDriver keeps jobs in a buffered channel. It is the default
// driver, used in development and tests where durability is not
// needed.
type MemoryDriver struct {
	jobs chan []byte
}

// NewMemoryDriver creates a driver that holds up to 1024 pending jobs.
func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{jobs: make(chan []byte, 1024)}
}

func (d *MemoryDriver) Push(payload []byte) error {
	select {
	case d.jobs <- payload:
		return nil
	default:
		return errors.New("queue: memory driver full")
	}
}

func (d *MemoryDriver) Pop(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case payload := <-d.jobs:
		return payload, nil
	}
}
