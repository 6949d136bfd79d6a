package extension

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

func TestTracker_OfferConcurrent(t *testing.T) {
	var (
		tr Tracker
		wg sync.WaitGroup
	)
	assert.Equal(t, int64(-1), tr.Snapshot().Best)

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for c := 1000; c >= 0; c -= 8 {
				tr.offer(int64(c + w))
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, int64(0), tr.bound())

	assert.False(t, tr.offer(3))
	tr.resetBest()
	assert.True(t, tr.offer(3))
	assert.False(t, tr.offer(3))
	assert.True(t, tr.offer(2))
}

func TestTracker_Counters(t *testing.T) {
	var tr Tracker
	tr.begin(PhaseSearching, 40)
	tr.add(10)
	tr.add(0)
	p := tr.Snapshot()
	assert.Equal(t, PhaseSearching, p.Phase)
	assert.Equal(t, int64(10), p.Done)
	assert.InDelta(t, 0.25, p.Fraction(), 1e-12)
	assert.Equal(t, "searching", p.Phase.String())

	tr.reset()
	assert.Equal(t, Progress{Phase: PhaseIdle, Best: -1}, tr.Snapshot())
	assert.Equal(t, 0.0, tr.Snapshot().Fraction())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestReporter_FinishOnce(t *testing.T) {
	var (
		tr    Tracker
		calls int
	)
	r := startReporter(&tr, func(Progress) { calls++ }, DefaultProgressInterval)
	r.finish()
	r.finish()
	assert.GreaterOrEqual(t, calls, 1)

	assert.Nil(t, startReporter(&tr, nil, 0))
	var none *reporter
	assert.NotPanics(t, none.finish)
}

// TestRun_PanicStopsReporter: an engine panic still stops the ticker and
// delivers the final snapshot.
func TestRun_PanicStopsReporter(t *testing.T) {
	g, err := multigraph.New(1)
	require.NoError(t, err)
	var calls atomic.Int32
	fn := func(Progress) { calls.Add(1) }
	o := newOptions([]Option{WithProgress(fn, time.Hour)})
	boom := func(context.Context, *instance) (*Solution, error) {
		violation("engine failed")
		return nil, nil
	}

	assert.Panics(t, func() {
		_, _ = run(context.Background(), g, g, 1, o, boom)
	})
	assert.Equal(t, int32(1), calls.Load())
}

func TestTracker_Grow(t *testing.T) {
	var tr Tracker
	tr.begin(PhaseExtending, 8)
	tr.add(8)
	tr.grow(4)
	tr.add(4)
	s := tr.Snapshot()
	assert.Equal(t, int64(12), s.Total)
	assert.Equal(t, s.Total, s.Done)
}
