// Package queue runs background jobs, most importantly the order
// reminder mails. Jobs are serialized as JSON envelopes so the redis
// driver can hand them to workers in another process.
//
//	type ReminderMail struct{ OrderID uint }
//	func (j *ReminderMail) Handle() error { ... }
//
//	func init() {
//	    queue.Register("jobs.ReminderMail", func() queue.Job { return &ReminderMail{} })
//	}
//
//	queue.Dispatch(ReminderMail{OrderID: 42})
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shashiranjanraj/charvi/pkg/logger"
	"github.com/shashiranjanraj/charvi/pkg/metrics"
)

// Job is one unit of background work.
type Job interface {
	Handle() error
}

// Driver stores serialized jobs between Dispatch and the workers.
type Driver interface {
	Push(payload []byte) error
	Pop(ctx context.Context) ([]byte, error)
}

// FailedJob is kept in memory after a job exhausts its retries. The
// database record written alongside it is FailedJobRecord.
type FailedJob struct {
	Job      Job
	Err      error
	FailedAt time.Time
	Attempts int
}

type manager struct {
	mu       sync.RWMutex
	driver   Driver
	factory  map[string]func() Job
	failed   []FailedJob
	maxRetry int
}

var q = &manager{
	driver:   NewMemoryDriver(),
	factory:  map[string]func() Job{},
	maxRetry: 3,
}

// Register maps a job type name to a constructor so workers can decode
// its payload. The name must equal fmt.Sprintf("%T", job) of the value
// passed to Dispatch.
func Register(name string, fn func() Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.factory[name] = fn
}

// SetDriver swaps the backing store, e.g. for the redis driver.
func SetDriver(d Driver) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.driver = d
}

// SetMaxRetry changes how often a failing job is re-attempted.
func SetMaxRetry(n int) { q.maxRetry = n }

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatch serializes job and pushes it onto the queue.
func Dispatch(job Job) error {
	name := fmt.Sprintf("%T", job)

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("queue: marshal %s: %w", name, err)
	}
	env, err := json.Marshal(envelope{Type: name, Payload: payload})
	if err != nil {
		return fmt.Errorf("queue: marshal envelope: %w", err)
	}

	q.mu.RLock()
	d := q.driver
	q.mu.RUnlock()
	return d.Push(env)
}

// StartWorkers launches n workers that pull and execute jobs until ctx
// is cancelled.
func StartWorkers(ctx context.Context, n int) {
	for i := 0; i < n; i++ {
		go worker(ctx)
	}
	logger.Info("queue: workers started", "count", n)
}

// FailedJobs snapshots the jobs that ran out of retries in this process.
func FailedJobs() []FailedJob {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]FailedJob, len(q.failed))
	copy(out, q.failed)
	return out
}

func worker(ctx context.Context) {
	for ctx.Err() == nil {
		q.mu.RLock()
		d := q.driver
		q.mu.RUnlock()

		raw, err := d.Pop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}
		if raw == nil {
			continue
		}
		execute(raw)
	}
}

func execute(raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Error("queue: bad envelope", "error", err)
		return
	}

	q.mu.RLock()
	fn, ok := q.factory[env.Type]
	q.mu.RUnlock()
	if !ok {
		logger.Warn("queue: unregistered job type", "type", env.Type)
		return
	}

	job := fn()
	if err := json.Unmarshal(env.Payload, job); err != nil {
		logger.Error("queue: bad payload", "type", env.Type, "error", err)
		return
	}

	start := time.Now()
	var lastErr error
	for attempt := 1; attempt <= q.maxRetry; attempt++ {
		if lastErr = job.Handle(); lastErr == nil {
			logger.Info("queue: job processed", "type", env.Type)
			metrics.RecordQueueJob(env.Type, "success", start)
			return
		}
		logger.Warn("queue: job failed",
			"type", env.Type, "attempt", attempt, "error", lastErr)
		if attempt < q.maxRetry {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	q.recordFailure(job, env.Type, lastErr)
	metrics.RecordQueueJob(env.Type, "failed", start)
	logger.Error("queue: retries exhausted", "type", env.Type, "error", lastErr)
}
