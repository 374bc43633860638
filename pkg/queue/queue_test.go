package queue_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/charvi/pkg/queue"
)

var reminderCount atomic.Int32

type reminderJob struct {
	OrderID uint `json:"order_id"`
}

func (j *reminderJob) Handle() error {
	reminderCount.Add(1)
	return nil
}

type failJob struct{}

func (j *failJob) Handle() error {
	return errors.New("always fails")
}

func init() {
	queue.Register("*queue_test.reminderJob", func() queue.Job { return &reminderJob{} })
	queue.Register("*queue_test.failJob", func() queue.Job { return &failJob{} })
	queue.StartWorkers(context.Background(), 2)
}

func TestDispatchAndProcess(t *testing.T) {
	before := reminderCount.Load()

	require.NoError(t, queue.Dispatch(&reminderJob{OrderID: 7}))

	deadline := time.After(2 * time.Second)
	for reminderCount.Load() == before {
		select {
		case <-deadline:
			t.Fatal("job was never processed")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestFailedJobRecorded(t *testing.T) {
	queue.SetMaxRetry(1)
	defer queue.SetMaxRetry(3)

	require.NoError(t, queue.Dispatch(&failJob{}))

	// One attempt, no backoff after the last, plus slack for the worker.
	time.Sleep(2 * time.Second)

	assert.NotEmpty(t, queue.FailedJobs())
}
