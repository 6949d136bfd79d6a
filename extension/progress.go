// Package extension - live progress: atomic Tracker and push reporter.
//
// Concurrency:
//   - Tracker methods are lock-free and safe from any goroutine.
//   - The reporter calls ProgressFunc from a single goroutine only.

package extension

import (
	"sync"
	"sync/atomic"
	"time"
)

// Phase names the stage a run is in.
type Phase int32

const (
	PhaseIdle        Phase = iota
	PhaseEnumerating       // counting / materializing mappings
	PhaseSearching         // exact: scoring k-subsets
	PhaseExtending         // approx: greedy steps
	PhaseFinalizing        // assembling and self-checking the solution
	PhaseDone
)

var phaseNames = [...]string{"idle", "enumerating", "searching", "extending", "finalizing", "done"}

// String returns the lower-case phase name.
func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}

	return "unknown"
}

// Progress is a point-in-time copy of a Tracker.
// Done and Total count k-subsets (exact) or trials (approx) of the current
// phase. Best is the lowest cost seen so far, or -1 if none.
type Progress struct {
	Phase Phase
	Done  int64
	Total int64
	Best  int64
}

// Fraction returns Done/Total in [0, 1], or 0 when Total is unknown.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Done) / float64(p.Total)
	if f > 1 {
		return 1
	}

	return f
}

// Tracker holds the live counters of one run. All methods are safe for
// concurrent use and lock-free. The zero value is ready to use.
//
// The search engines also use the tracker's best value as the shared pruning
// bound between workers, so a Tracker must not be shared by concurrent runs.
type Tracker struct {
	phase atomic.Int32
	done  atomic.Int64
	total atomic.Int64
	best  atomic.Int64 // cost+1; 0 means no cost yet
}

// Snapshot returns the current counters.
func (t *Tracker) Snapshot() Progress {
	return Progress{
		Phase: Phase(t.phase.Load()),
		Done:  t.done.Load(),
		Total: t.total.Load(),
		Best:  t.best.Load() - 1,
	}
}

// reset clears every counter.
func (t *Tracker) reset() {
	t.phase.Store(int32(PhaseIdle))
	t.done.Store(0)
	t.total.Store(0)
	t.best.Store(0)
}

// begin enters phase p with total units of work.
func (t *Tracker) begin(p Phase, total int64) {
	t.done.Store(0)
	t.total.Store(total)
	t.phase.Store(int32(p))
}

// setPhase changes the phase and keeps the counters.
func (t *Tracker) setPhase(p Phase) { t.phase.Store(int32(p)) }

// grow extends the total by n units of work.
func (t *Tracker) grow(n int64) { t.total.Add(n) }

// add records n finished units.
func (t *Tracker) add(n int64) { t.done.Add(n) }

// bound returns the best cost so far, or -1 if none.
func (t *Tracker) bound() int64 { return t.best.Load() - 1 }

// offer lowers the best cost to c if c improves on it and reports whether it
// did. Standard CAS loop: retry while another worker raced us with a value
// that is still worse than c.
func (t *Tracker) offer(c int64) bool {
	var cur int64
	for {
		cur = t.best.Load()
		if cur != 0 && cur-1 <= c {
			return false
		}
		if t.best.CompareAndSwap(cur, c+1) {
			return true
		}
	}
}

// resetBest forgets the best cost. Used between approximate steps, whose
// costs are measured against different working hosts.
func (t *Tracker) resetBest() { t.best.Store(0) }

// reporter pushes Snapshots to fn every interval until stopped.
type reporter struct {
	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
	fn   ProgressFunc
	t    *Tracker
}

// startReporter launches the ticker goroutine. It returns nil when fn is nil.
func startReporter(t *Tracker, fn ProgressFunc, interval time.Duration) *reporter {
	if fn == nil {
		return nil
	}
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	r := &reporter{stop: make(chan struct{}), fn: fn, t: t}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-r.stop:
				return
			case <-tick.C:
				fn(t.Snapshot())
			}
		}
	}()

	return r
}

// finish stops the ticker and delivers one final snapshot. Safe on nil.
func (r *reporter) finish() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		close(r.stop)
		r.wg.Wait()
		r.fn(r.t.Snapshot())
	})
}
