// Package schedule runs the CRM's recurring jobs on fixed intervals.
//
//	schedule.Every(5).Minutes().Name("heartbeat").Run(heartbeat)
//	schedule.Every(12).Hours().WithoutOverlapping().Name("restock").Run(restock)
//	schedule.Daily().Name("order-reminders").Run(orderReminders)
//	schedule.Weekly().Name("report").Run(weeklyReport)
//
//	schedule.Start(ctx) // once, at boot
package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shashiranjanraj/charvi/pkg/logger"
)

// Task is a scheduled unit of work. Tasks run on their own goroutine.
type Task func()

type entry struct {
	id        string
	interval  time.Duration
	noOverlap bool
	task      Task

	mu      sync.Mutex
	lastRun time.Time
	active  bool
}

var (
	regMu   sync.Mutex
	entries []*entry
)

// Builder configures one entry before Run registers it.
type Builder struct {
	e *entry
}

// Every begins an interval definition: Every(5).Minutes().
func Every(n int) interval { return interval(n) }

// Daily is shorthand for a 24-hour interval.
func Daily() *Builder { return Every(24).Hours() }

// Weekly is shorthand for a 7-day interval.
func Weekly() *Builder { return Every(7).Days() }

type interval int

func (n interval) Seconds() *Builder { return every(time.Duration(n) * time.Second) }
func (n interval) Minutes() *Builder { return every(time.Duration(n) * time.Minute) }
func (n interval) Hours() *Builder   { return every(time.Duration(n) * time.Hour) }
func (n interval) Days() *Builder    { return every(time.Duration(n) * 24 * time.Hour) }

func every(d time.Duration) *Builder {
	return &Builder{e: &entry{interval: d}}
}

// WithoutOverlapping skips a tick while the previous run is still going.
func (b *Builder) WithoutOverlapping() *Builder {
	b.e.noOverlap = true
	return b
}

// Name sets the identifier used in logs and the jobs:list output.
func (b *Builder) Name(id string) *Builder {
	b.e.id = id
	return b
}

// Run registers the task. The first run happens on the next scheduler
// tick, then repeats every interval.
func (b *Builder) Run(fn Task) {
	b.e.task = fn

	regMu.Lock()
	defer regMu.Unlock()
	if b.e.id == "" {
		b.e.id = fmt.Sprintf("task-%d", len(entries)+1)
	}
	entries = append(entries, b.e)
}

// Start launches the dispatch loop. It returns immediately; the loop
// stops when ctx is cancelled.
func Start(ctx context.Context) {
	go loop(ctx)
	logger.Info("schedule: scheduler started")
}

// List describes the registered entries for CLI display.
func List() []string {
	regMu.Lock()
	defer regMu.Unlock()

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, fmt.Sprintf("%s  [every %s]", e.id, e.interval))
	}
	return out
}

func loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("schedule: scheduler stopped")
			return
		case now := <-ticker.C:
			regMu.Lock()
			due := make([]*entry, 0, len(entries))
			for _, e := range entries {
				due = append(due, e)
			}
			regMu.Unlock()

			for _, e := range due {
				e.maybeRun(now)
			}
		}
	}
}

func (e *entry) maybeRun(now time.Time) {
	e.mu.Lock()
	if !e.lastRun.IsZero() && now.Sub(e.lastRun) < e.interval {
		e.mu.Unlock()
		return
	}
	if e.noOverlap && e.active {
		e.mu.Unlock()
		logger.Warn("schedule: previous run still active, skipping", "id", e.id)
		return
	}
	e.lastRun = now
	e.active = true
	e.mu.Unlock()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("schedule: task panicked", "id", e.id, "panic", r)
			}
			e.mu.Lock()
			e.active = false
			e.mu.Unlock()
		}()

		logger.Info("schedule: running task", "id", e.id)
		e.task()
	}()
}
