// Package extension - algorithm selection, Options and functional options.
//
// Zero values resolve to documented defaults; validate rejects ranges that do
// not depend on the graphs.

package extension

import (
	"fmt"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/metrics"
)

// Algorithm selects the search engine used by Solve.
type Algorithm int

const (
	// Exact enumerates every k-subset of injective mappings.
	Exact Algorithm = iota
	// Approx runs Sequential Greedy Extension.
	Approx
)

// String returns "exact" or "approx".
func (a Algorithm) String() string {
	switch a {
	case Exact:
		return "exact"
	case Approx:
		return "approx"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "exact" / "approx" (case-insensitive; "approximate"
// is accepted too) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return Exact, nil
	case "approx", "approximate":
		return Approx, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Defaults.
const (
	DefaultTrialsMultiplier = 1.0
	DefaultMaxRetries       = 3
	DefaultMaterializeLimit = 1 << 20
	DefaultProgressInterval = 250 * time.Millisecond

	// maxTrialsPerStep bounds n1·n2·multiplier.
	maxTrialsPerStep = 1 << 31
)

// ProgressFunc receives push progress notifications. It is called from a
// dedicated goroutine, never from search workers, so it may block briefly
// without stalling the search.
type ProgressFunc func(Progress)

// Option configures a solver run. Use with Solve(ctx, g, h, k, opts...).
type Option func(*Options)

// Options holds the tunables shared by both engines.
type Options struct {
	// Algo selects the engine used by Solve. Default Exact.
	Algo Algorithm

	// Workers bounds the goroutines used for subset ranges (exact) or trial
	// ranges (approx). 0 means runtime.GOMAXPROCS(0).
	Workers int

	// TrialsMultiplier scales the trials per step: T = ceil(n1·n2·m), at
	// least 1. Must be finite and > 0. Default 1.
	TrialsMultiplier float64

	// Seed drives every random choice of the approximate engine.
	// 0 selects a fixed default seed, so runs are reproducible by default.
	Seed int64

	// MaxRetries bounds how often a step whose trials were all duplicates of
	// already chosen mappings is re-rolled before the deterministic fallback
	// scan. Default 3.
	MaxRetries int

	// MaterializeLimit is the largest mapping count the exact engine keeps in
	// memory; above it mappings are rebuilt from their rank on demand.
	MaterializeLimit int

	// MaxSubsets caps the number of k-subsets the exact engine accepts.
	// 0 means no cap beyond integer range.
	MaxSubsets int

	// Tracker, when non-nil, receives live counters for pull-based polling.
	Tracker *Tracker

	// OnProgress, when non-nil, is called every ProgressInterval and once
	// when the run ends.
	OnProgress ProgressFunc

	// ProgressInterval is the push period for OnProgress.
	ProgressInterval time.Duration

	// Logger receives run and step summaries. Default zerolog.Nop().
	Logger zerolog.Logger

	// Metrics, when non-nil, records run outcomes.
	Metrics *metrics.Collector
}

// DefaultOptions returns Options with:
//   - Exact engine, GOMAXPROCS workers
//   - TrialsMultiplier 1, default seed, 3 retries
//   - MaterializeLimit 2^20, no subset cap
//   - no progress sink, no-op logger, no metrics
func DefaultOptions() Options {
	return Options{
		Algo:             Exact,
		Workers:          0,
		TrialsMultiplier: DefaultTrialsMultiplier,
		Seed:             0,
		MaxRetries:       DefaultMaxRetries,
		MaterializeLimit: DefaultMaterializeLimit,
		MaxSubsets:       0,
		ProgressInterval: DefaultProgressInterval,
		Logger:           zerolog.Nop(),
	}
}

// WithAlgorithm selects the engine used by Solve.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algo = a }
}

// WithWorkers sets the worker bound; 0 restores GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithTrialsMultiplier sets the approximate engine's trials multiplier.
func WithTrialsMultiplier(m float64) Option {
	return func(o *Options) { o.TrialsMultiplier = m }
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxRetries sets the duplicate re-roll budget.
func WithMaxRetries(n int) Option {
	return func(o *Options) { o.MaxRetries = n }
}

// WithMaterializeLimit sets the in-memory mapping bound of the exact engine.
func WithMaterializeLimit(n int) Option {
	return func(o *Options) { o.MaterializeLimit = n }
}

// WithMaxSubsets caps the exact search space; 0 disables the cap.
func WithMaxSubsets(n int) Option {
	return func(o *Options) { o.MaxSubsets = n }
}

// WithTracker installs a pull-based progress tracker.
func WithTracker(t *Tracker) Option {
	return func(o *Options) { o.Tracker = t }
}

// WithProgress installs a push callback fired every interval.
// A non-positive interval keeps the current one.
func WithProgress(fn ProgressFunc, interval time.Duration) Option {
	return func(o *Options) {
		o.OnProgress = fn
		if interval > 0 {
			o.ProgressInterval = interval
		}
	}
}

// WithLogger sets the run logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *Options) { o.Metrics = c }
}

// newOptions applies opts on top of DefaultOptions. Nil options are skipped.
func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// validate checks ranges that do not depend on the graphs.
func (o *Options) validate() error {
	switch {
	case o.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidOption, o.Workers)
	case o.MaxRetries < 0:
		return fmt.Errorf("%w: max retries %d", ErrInvalidOption, o.MaxRetries)
	case o.MaterializeLimit < 0:
		return fmt.Errorf("%w: materialize limit %d", ErrInvalidOption, o.MaterializeLimit)
	case o.MaxSubsets < 0:
		return fmt.Errorf("%w: max subsets %d", ErrInvalidOption, o.MaxSubsets)
	case o.ProgressInterval < 0:
		return fmt.Errorf("%w: progress interval %v", ErrInvalidOption, o.ProgressInterval)
	}
	if !(o.TrialsMultiplier > 0) || math.IsInf(o.TrialsMultiplier, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidMultiplier, o.TrialsMultiplier)
	}

	return nil
}

// workers resolves the effective worker bound.
func (o *Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// TrialsPerStep returns max(1, ceil(n1·n2·multiplier)).
// Errors: ErrInvalidMultiplier, ErrSearchSpaceTooLarge.
func TrialsPerStep(n1, n2 int, multiplier float64) (int, error) {
	if !(multiplier > 0) || math.IsInf(multiplier, 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMultiplier, multiplier)
	}
	t := math.Ceil(float64(n1) * float64(n2) * multiplier)
	if t > maxTrialsPerStep {
		return 0, fmt.Errorf("%w: %.0f trials per step", ErrSearchSpaceTooLarge, t)
	}
	if t < 1 {
		return 1, nil
	}

	return int(t), nil
}
