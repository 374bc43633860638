package schedule_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/charvi/pkg/schedule"
)

func TestRunsOnInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	schedule.Every(1).Seconds().Name("tick").Run(func() { runs.Add(1) })
	schedule.Start(ctx)

	time.Sleep(2500 * time.Millisecond)
	require.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestWithoutOverlappingSkipsWhileActive(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var starts atomic.Int32
	release := make(chan struct{})
	schedule.Every(1).Seconds().
		WithoutOverlapping().
		Name("slow").
		Run(func() {
			starts.Add(1)
			<-release
		})
	schedule.Start(ctx)

	time.Sleep(2500 * time.Millisecond)
	close(release)
	require.Equal(t, int32(1), starts.Load())
}

func TestListDescribesEntries(t *testing.T) {
	schedule.Every(12).Hours().Name("restock-window").Run(func() {})
	require.Contains(t, schedule.List(), "restock-window  [every 12h0m0s]")
}
