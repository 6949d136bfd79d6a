// Package extension - unified dispatcher for the solvers.
//
// Solve routes on Options.Algo; SolveExact and SolveApprox pin the engine.
// run wraps every engine call with validation, run id, logging, progress and
// metrics.

package extension

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

// instance bundles the validated inputs of one run.
type instance struct {
	g, h    *multigraph.Graph
	k       int
	opts    Options
	log     zerolog.Logger
	tracker *Tracker
}

type engine func(ctx context.Context, in *instance) (*Solution, error)

// Solve finds k distinct injective mappings of pattern g into host h whose
// combined edge additions are minimal (Exact) or small (Approx), routing on
// Options.Algo.
//
// Contracts:
//   - g and h are never modified;
//   - k ≥ 1;
//   - a nil ctx is treated as context.Background().
//
// Errors:
//   - ErrNilGraph, ErrInvalidK, ErrInvalidOption, ErrInvalidMultiplier;
//   - ErrUnsupportedAlgorithm;
//   - *InfeasibleError (matches ErrInfeasible) when fewer than k mappings exist;
//   - ErrSearchSpaceTooLarge (exact only);
//   - ErrAborted joined with ctx.Err() on cancellation; the Solution is then
//     non-nil with StatusAborted if anything was scored.
//
// Invariant violations panic with an error wrapping ErrInvariantViolation.
func Solve(ctx context.Context, g, h *multigraph.Graph, k int, opts ...Option) (*Solution, error) {
	o := newOptions(opts)
	switch o.Algo {
	case Exact:
		return run(ctx, g, h, k, o, exactSearch)
	case Approx:
		return run(ctx, g, h, k, o, approxSearch)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// SolveExact is Solve with the Exact engine regardless of Options.Algo.
func SolveExact(ctx context.Context, g, h *multigraph.Graph, k int, opts ...Option) (*Solution, error) {
	o := newOptions(opts)
	o.Algo = Exact

	return run(ctx, g, h, k, o, exactSearch)
}

// SolveApprox is Solve with the Approx engine regardless of Options.Algo.
func SolveApprox(ctx context.Context, g, h *multigraph.Graph, k int, opts ...Option) (*Solution, error) {
	o := newOptions(opts)
	o.Algo = Approx

	return run(ctx, g, h, k, o, approxSearch)
}

// run validates, wires logging, progress and metrics around one engine call.
func run(ctx context.Context, g, h *multigraph.Graph, k int, o Options, eng engine) (*Solution, error) {
	// Stage 1: validation; nothing is logged or counted for rejected input.
	if g == nil || h == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, ErrInvalidK
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Stage 2: run context.
	runID := uuid.New()
	in := &instance{
		g:       g,
		h:       h,
		k:       k,
		opts:    o,
		tracker: o.Tracker,
		log: o.Logger.With().
			Str("run_id", runID.String()).
			Str("algorithm", o.Algo.String()).
			Logger(),
	}
	if in.tracker == nil {
		in.tracker = new(Tracker)
	}
	in.tracker.reset()
	in.log.Info().
		Int("k", k).
		Int("n1", g.Order()).
		Int("n2", h.Order()).
		Int("workers", o.workers()).
		Msg("Starting search")

	rep := startReporter(in.tracker, o.OnProgress, o.ProgressInterval)
	defer rep.finish()
	start := time.Now()

	// Stage 3: engine.
	sol, err := eng(ctx, in)
	elapsed := time.Since(start)
	in.tracker.setPhase(PhaseDone)

	// Stage 4: bookkeeping.
	status := outcome(sol, err)
	cost := -1
	if sol != nil {
		sol.RunID = runID
		sol.K = k
		sol.Elapsed = elapsed
		cost = sol.Cost
		switch o.Algo {
		case Exact:
			o.Metrics.AddSubsets(sol.Evaluated)
		case Approx:
			o.Metrics.AddTrials(sol.Evaluated)
		}
	}
	o.Metrics.ObserveRun(o.Algo.String(), status, elapsed, cost)

	ev := in.log.Info()
	if err != nil && !errors.Is(err, ErrInfeasible) {
		ev = in.log.Warn().Err(err)
	}
	ev.Str("status", status).
		Int("cost", cost).
		Dur("elapsed", elapsed).
		Msg("Search finished")

	return sol, err
}

// outcome is the metrics/log label of a finished run.
func outcome(sol *Solution, err error) string {
	switch {
	case sol != nil:
		return sol.Status.String()
	case errors.Is(err, ErrInfeasible):
		return "infeasible"
	case errors.Is(err, ErrAborted):
		return StatusAborted.String()
	default:
		return "error"
	}
}
