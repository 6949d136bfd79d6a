// Package extension - exhaustive k-subset search (exact engine).
//
// The C(|ℱ|, k) subset ranks are cut into contiguous ranges, one goroutine
// each. Workers prune against a shared atomic bound; the merge keeps the
// lowest-ranked optimum, so the result is independent of the worker count.

package extension

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/demand"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/mapping"
)

// checkEvery is the cancellation/progress stride of search loops (power of 2).
const checkEvery = 1024

// exactResult is one worker's local minimum.
type exactResult struct {
	found   bool
	cost    int
	rank    int   // subset rank of the witness
	subset  []int // mapping ranks of the witness
	visited int
}

// better reports whether r beats o: lower cost, ties to the lower rank.
func (r *exactResult) better(o *exactResult) bool {
	if !o.found {
		return r.found
	}

	return r.found && (r.cost < o.cost || (r.cost == o.cost && r.rank < o.rank))
}

// exactWorker scans one contiguous range of subset ranks.
type exactWorker struct {
	id      int
	n1, n2  int
	m       int // |ℱ|
	pool    []mapping.Mapping
	comb    *demand.Combiner
	tracker *Tracker

	// lazy member cache, keyed by position in the subset
	members []mapping.Mapping
	ranks   []int
}

// member returns mapping number idx for subset position pos.
func (w *exactWorker) member(pos, idx int) mapping.Mapping {
	if w.pool != nil {
		return w.pool[idx]
	}
	if w.ranks[pos] != idx {
		// idx < m is guaranteed by the subset arithmetic.
		w.members[pos], _ = mapping.Unrank(w.n1, w.n2, idx)
		w.ranks[pos] = idx
	}

	return w.members[pos]
}

// scan walks ranks [lo, hi) and leaves its local minimum in res.
//
// Pruning keeps the result identical to a sequential scan:
//   - combined cost only grows as members are added, so a partial cost above
//     the shared bound can never win;
//   - within the range ranks ascend, so a partial cost reaching the local
//     best can at most tie with a lower rank.
func (w *exactWorker) scan(ctx context.Context, lo, hi int, res *exactResult) error {
	var (
		k       = len(w.ranks)
		c       = make([]int, k)
		idx     int
		pos     int
		cost    int
		bound   int64
		pruned  bool
		pending int64
	)
	unrankSubset(c, w.m, lo)
	defer func() { w.tracker.add(pending) }()

	for idx = lo; idx < hi; idx++ {
		if (idx-lo)&(checkEvery-1) == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			w.tracker.add(pending)
			pending = 0
		}
		if idx > lo {
			nextSubset(c, w.m)
		}
		pending++
		res.visited++

		w.comb.Reset()
		bound = w.tracker.bound()
		pruned = false
		for pos = 0; pos < k; pos++ {
			w.comb.Add(w.member(pos, c[pos]))
			cost = w.comb.Cost()
			if (bound >= 0 && int64(cost) > bound) || (res.found && cost >= res.cost) {
				pruned = true
				break
			}
		}
		if pruned {
			continue
		}

		res.found = true
		res.cost = cost
		res.rank = idx
		res.subset = append(res.subset[:0], c...)
		w.tracker.offer(int64(cost))
		if cost == 0 {
			break
		}
	}

	return nil
}

// exactSearch scores every k-subset of injective mappings and returns the
// cheapest, ties broken by the lowest lexicographic subset rank.
//
// Stages:
//  1. Count ℱ; infeasible when |ℱ| < k.
//  2. Guard C(|ℱ|, k) and materialize ℱ when small enough.
//  3. Split [0, C) into W contiguous ranges, one errgroup goroutine each.
//  4. Merge local minima, assemble and self-check.
//
// Complexity: O(C(|ℱ|, k)·k·|E(G)|) time, O(W·n2² + |ℱ|·n1) memory when
// materialized.
func exactSearch(ctx context.Context, in *instance) (*Solution, error) {
	var (
		n1, n2 = in.g.Order(), in.h.Order()
		k      = in.k
		log    = in.log
	)

	// Stage 1: mapping count.
	in.tracker.setPhase(PhaseEnumerating)
	m, err := mapping.Count(n1, n2)
	if err != nil {
		if errors.Is(err, mapping.ErrCountOverflow) {
			return nil, fmt.Errorf("%w: %w", ErrSearchSpaceTooLarge, err)
		}
		return nil, err
	}
	if m < k {
		return nil, &InfeasibleError{Need: k, Available: m, N1: n1, N2: n2}
	}

	// Stage 2: subset space.
	total, ok := subsetCount(m, k)
	if !ok {
		return nil, fmt.Errorf("%w: C(%d, %d) overflows", ErrSearchSpaceTooLarge, m, k)
	}
	if in.opts.MaxSubsets > 0 && total > in.opts.MaxSubsets {
		return nil, fmt.Errorf("%w: %d subsets above limit %d", ErrSearchSpaceTooLarge, total, in.opts.MaxSubsets)
	}
	var pool []mapping.Mapping
	if m <= in.opts.MaterializeLimit {
		if pool, err = mapping.Collect(n1, n2, m); err != nil {
			return nil, err
		}
	}
	log.Debug().
		Int("mappings", m).
		Int("subsets", total).
		Bool("materialized", pool != nil).
		Msg("Search space sized")

	// Stage 3: parallel scan.
	workers := min(in.opts.workers(), total)
	pattern := demand.Compile(in.g)
	results := make([]exactResult, workers)
	in.tracker.begin(PhaseSearching, int64(total))

	grp, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := splitRange(total, workers, w)
		wk := &exactWorker{
			id:      w,
			n1:      n1,
			n2:      n2,
			m:       m,
			pool:    pool,
			comb:    demand.NewCombiner(pattern, in.h),
			tracker: in.tracker,
			members: make([]mapping.Mapping, k),
			ranks:   make([]int, k),
		}
		for i := range wk.ranks {
			wk.ranks[i] = -1
		}
		res := &results[w]
		grp.Go(func() error {
			err := wk.scan(gctx, lo, hi, res)
			log.Debug().
				Int("worker", wk.id).
				Int("from", lo).
				Int("to", hi).
				Int("visited", res.visited).
				Int("best", res.cost).
				Bool("found", res.found).
				Msg("Subset range finished")
			return err
		})
	}
	waitErr := grp.Wait()

	// Stage 4: merge.
	in.tracker.setPhase(PhaseFinalizing)
	var (
		best    exactResult
		visited int
	)
	for i := range results {
		visited += results[i].visited
		if results[i].better(&best) {
			best = results[i]
		}
	}
	if !best.found {
		if waitErr != nil {
			return nil, abortedErr(waitErr)
		}
		violation("exact search scored no subset out of %d", total)
	}

	ms := make([]mapping.Mapping, k)
	for pos, idx := range best.subset {
		if pool != nil {
			ms[pos] = pool[idx].Clone()
		} else {
			ms[pos], _ = mapping.Unrank(n1, n2, idx)
		}
	}
	sol := assemble(in.g, in.h, ms)
	if sol.Cost != best.cost {
		violation("combiner cost %d, assembled cost %d", best.cost, sol.Cost)
	}
	sol.Algorithm = Exact
	sol.Status = StatusOptimal
	sol.Evaluated = visited
	if waitErr != nil {
		sol.Status = StatusAborted
		return sol, abortedErr(waitErr)
	}

	return sol, nil
}
