// Package extension - Sequential Greedy Extension (approximate engine).
//
// k steps; each builds T randomized trials against a private working host,
// keeps the cheapest distinct one and raises the working host so it embeds.
//
// Determinism:
//   - every trial draws from its own stream, so results depend on the seed only;
//   - picks are ordered by (cost, random key, trial index).

package extension

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/mapping"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

// trialStride is the cancellation stride inside a trial range (power of 2).
const trialStride = 64

// trialPick is the best distinct trial of one range.
type trialPick struct {
	found bool
	f     mapping.Mapping
	cost  int
	key   uint64 // random tie-break key drawn from the trial's own stream
	trial int
	built int
	dups  int
}

// better orders picks by (cost, key, trial).
func (p *trialPick) better(o *trialPick) bool {
	if !o.found {
		return p.found
	}
	if !p.found {
		return false
	}
	if p.cost != o.cost {
		return p.cost < o.cost
	}
	if p.key != o.key {
		return p.key < o.key
	}

	return p.trial < o.trial
}

// approxWorker owns the per-goroutine state of the trial fan-out.
type approxWorker struct {
	b      *trialBuilder
	stream *trialStream
}

// greedy is the state of one Sequential Greedy Extension run.
type greedy struct {
	in      *instance
	work    *multigraph.Graph // private, raised after each step
	trials  int
	workers []approxWorker
	chosen  []mapping.Mapping
	keys    map[string]struct{}
	built   int
}

// runTrials builds and scores trials [0, T) of (step, attempt) across the
// workers and returns the best one that is not already chosen.
// H_work and the chosen set are only read here.
func (s *greedy) runTrials(ctx context.Context, step, attempt int) (trialPick, error) {
	var (
		n     = len(s.workers)
		picks = make([]trialPick, n)
	)
	grp, gctx := errgroup.WithContext(ctx)
	for w := 0; w < n; w++ {
		lo, hi := splitRange(s.trials, n, w)
		wk, res := s.workers[w], &picks[w]
		grp.Go(func() error {
			var built, dups, t int
			defer func() {
				res.built, res.dups = built, dups
				s.in.tracker.add(int64(built))
			}()
			for t = lo; t < hi; t++ {
				if (t-lo)&(trialStride-1) == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				rng := wk.stream.reseed(step, attempt, t)
				f := wk.b.build(rng)
				cand := trialPick{found: true, f: f, key: rng.Uint64(), trial: t}
				built++
				if _, dup := s.keys[f.Key()]; dup {
					dups++
					continue
				}
				cand.cost = multigraph.Cost(s.in.g, s.work, f)
				if cand.better(res) {
					*res = cand
				}
			}
			if res.found {
				s.in.tracker.offer(int64(res.cost))
			}
			return nil
		})
	}
	err := grp.Wait()

	var best trialPick
	var built, dups int
	for i := range picks {
		built += picks[i].built
		dups += picks[i].dups
		if picks[i].better(&best) {
			best = picks[i]
		}
	}
	s.built += built
	best.built, best.dups = built, dups

	return best, err
}

// fallback scans mappings in enumeration order and returns the cheapest of
// the first T not yet chosen, ties to the earliest. It runs only when every
// re-rolled trial duplicated a chosen mapping.
func (s *greedy) fallback(ctx context.Context) (trialPick, error) {
	var best trialPick
	e, err := mapping.NewEnumerator(s.in.g.Order(), s.in.h.Order())
	if err != nil {
		return best, err
	}
	var distinct, scanned int
	for distinct < s.trials {
		if scanned&(checkEvery-1) == 0 {
			if err = ctx.Err(); err != nil {
				return best, err
			}
		}
		f, ok := e.Next()
		if !ok {
			break
		}
		scanned++
		if _, dup := s.keys[f.Key()]; dup {
			continue
		}
		distinct++
		c := multigraph.Cost(s.in.g, s.work, f)
		if !best.found || c < best.cost {
			best = trialPick{found: true, f: f, cost: c, trial: -1}
		}
	}

	return best, nil
}

// commit appends f to the chosen set and raises H_work so that f embeds.
func (s *greedy) commit(f mapping.Mapping) {
	s.chosen = append(s.chosen, f)
	s.keys[f.Key()] = struct{}{}
	var (
		n1   = s.in.g.Order()
		u, v int
		c    int
	)
	for u = 0; u < n1; u++ {
		for v = 0; v < n1; v++ {
			if c = s.in.g.Edge(u, v); c > 0 {
				s.work.Raise(f[u], f[v], c)
			}
		}
	}
}

// approxSearch runs Sequential Greedy Extension.
//
// For each of the k steps:
//  1. Build T randomized trial mappings against H_work, in parallel.
//  2. Keep the cheapest trial not already chosen (random tie-break).
//  3. If all trials were duplicates, re-roll up to MaxRetries times, then
//     fall back to a deterministic scan.
//  4. Raise H_work so the chosen mapping embeds.
//
// The final cost is recomputed on the untouched host by max-combination.
//
// Complexity: O(k·T·n1²·n2) time, O(n2² + W·(n1 + n2)) memory.
func approxSearch(ctx context.Context, in *instance) (*Solution, error) {
	var (
		n1, n2 = in.g.Order(), in.h.Order()
		k      = in.k
		log    = in.log
	)

	in.tracker.setPhase(PhaseEnumerating)
	m, err := mapping.Count(n1, n2)
	switch {
	case errors.Is(err, mapping.ErrCountOverflow):
		// more than MaxInt mappings, certainly ≥ k
	case err != nil:
		return nil, err
	case m < k:
		return nil, &InfeasibleError{Need: k, Available: m, N1: n1, N2: n2}
	}
	trials, err := TrialsPerStep(n1, n2, in.opts.TrialsMultiplier)
	if err != nil {
		return nil, err
	}

	s := &greedy{
		in:     in,
		work:   in.h.Clone(),
		trials: trials,
		chosen: make([]mapping.Mapping, 0, k),
		keys:   make(map[string]struct{}, k),
	}
	s.workers = make([]approxWorker, min(in.opts.workers(), trials))
	for i := range s.workers {
		s.workers[i] = approxWorker{
			b:      newTrialBuilder(in.g, s.work),
			stream: newTrialStream(in.opts.Seed),
		}
	}
	in.tracker.begin(PhaseExtending, int64(k)*int64(trials))

	var (
		step, attempt int
		pick          trialPick
	)
	for step = 0; step < k; step++ {
		in.tracker.resetBest()
		for attempt = 0; attempt <= in.opts.MaxRetries; attempt++ {
			if attempt > 0 {
				in.tracker.grow(int64(trials))
			}
			pick, err = s.runTrials(ctx, step, attempt)
			if err != nil {
				return s.aborted(err)
			}
			if pick.found {
				break
			}
			log.Debug().
				Int("step", step).
				Int("attempt", attempt).
				Int("duplicates", pick.dups).
				Msg("All trials duplicated chosen mappings")
		}
		if !pick.found {
			if pick, err = s.fallback(ctx); err != nil {
				return s.aborted(err)
			}
			if !pick.found {
				violation("no distinct mapping left at step %d of %d", step, k)
			}
			log.Debug().Int("step", step).Msg("Used deterministic fallback")
		}

		s.commit(pick.f)
		log.Debug().
			Int("step", step).
			Int("step_cost", pick.cost).
			Int("trial", pick.trial).
			Int("duplicates", pick.dups).
			Msg("Mapping chosen")
	}

	in.tracker.setPhase(PhaseFinalizing)
	sol := assemble(in.g, in.h, s.chosen)
	sol.Algorithm = Approx
	sol.Status = StatusApproximate
	sol.TrialsPerStep = trials
	sol.Evaluated = s.built

	return sol, nil
}

// aborted turns a cancellation into the partial result of the steps already
// completed, or a bare error when none completed.
func (s *greedy) aborted(cause error) (*Solution, error) {
	if len(s.chosen) == 0 {
		return nil, abortedErr(cause)
	}
	sol := assemble(s.in.g, s.in.h, s.chosen)
	sol.Algorithm = Approx
	sol.Status = StatusAborted
	sol.TrialsPerStep = s.trials
	sol.Evaluated = s.built

	return sol, abortedErr(cause)
}
