// Package extension - Solution value object, assembly and self-check.
//
// Additions and cost are always derived from the chosen mappings against the
// untouched host; a failed check is a programming error.

package extension

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/demand"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/mapping"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

// Status qualifies a Solution.
type Status int

const (
	// StatusOptimal: the exact engine scored every k-subset.
	StatusOptimal Status = iota
	// StatusApproximate: the greedy engine completed all k steps.
	StatusApproximate
	// StatusAborted: the run was cancelled; the Solution holds the best
	// result scored before cancellation.
	StatusAborted
)

// String returns "optimal", "approximate" or "aborted".
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusApproximate:
		return "approximate"
	case StatusAborted:
		return "aborted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Solution is the value object returned by the engines.
//
// Mappings holds K pairwise distinct mappings, except for an aborted
// approximate run, which holds the mappings chosen before cancellation.
// Additions lists, sorted by host edge, how many parallel edges must be
// added to the host so every mapping embeds; Cost is their sum.
type Solution struct {
	RunID     uuid.UUID
	Algorithm Algorithm
	Status    Status
	K         int
	Mappings  []mapping.Mapping
	Cost      int
	Additions []demand.Entry

	// TrialsPerStep is the approximate engine's T (0 for the exact engine).
	TrialsPerStep int
	// Evaluated counts scored k-subsets (exact) or built trials (approx).
	Evaluated int
	Elapsed   time.Duration
}

// assemble builds the Solution for ms against the original host h and runs
// the self-check. A failing check is a programming error and panics.
func assemble(g, h *multigraph.Graph, ms []mapping.Mapping) *Solution {
	ds := make([]*demand.Matrix, len(ms))
	for i, m := range ms {
		ds[i] = demand.FromMapping(g, m)
	}
	adds := demand.Combine(ds...).Deficit(h)
	var cost int
	for _, e := range adds {
		cost += e.Count
	}
	sol := &Solution{Mappings: ms, Cost: cost, Additions: adds}
	if err := sol.check(g, h); err != nil {
		panic(err)
	}

	return sol
}

// Verify re-runs the self-check against g and h:
//   - every mapping is injective into h and no two are equal;
//   - Additions are positive, sorted, and equal the max-combined deficit;
//   - Cost equals the sum of Additions;
//   - after applying Additions every mapping has single cost 0.
//
// Violations are reported as errors wrapping ErrInvariantViolation.
func (s *Solution) Verify(g, h *multigraph.Graph) error {
	if s == nil || g == nil || h == nil {
		return ErrNilGraph
	}

	return s.check(g, h)
}

func (s *Solution) check(g, h *multigraph.Graph) error {
	n1, n2 := g.Order(), h.Order()
	seen := make(map[string]struct{}, len(s.Mappings))
	ds := make([]*demand.Matrix, 0, len(s.Mappings))
	for i, m := range s.Mappings {
		if len(m) != n1 {
			return fmt.Errorf("%w: mapping %d has length %d, pattern order %d", ErrInvariantViolation, i, len(m), n1)
		}
		if err := m.Validate(n2); err != nil {
			return fmt.Errorf("%w: mapping %d %v: %w", ErrInvariantViolation, i, m, err)
		}
		if _, dup := seen[m.Key()]; dup {
			return fmt.Errorf("%w: mapping %d %v repeated", ErrInvariantViolation, i, m)
		}
		seen[m.Key()] = struct{}{}
		ds = append(ds, demand.FromMapping(g, m))
	}

	want := demand.Combine(ds...).Deficit(h)
	if len(want) != len(s.Additions) {
		return fmt.Errorf("%w: %d additions, expected %d", ErrInvariantViolation, len(s.Additions), len(want))
	}
	var sum int
	for i, e := range s.Additions {
		if e != want[i] || e.Count <= 0 {
			return fmt.Errorf("%w: addition %d is %v, expected %v", ErrInvariantViolation, i, e, want[i])
		}
		sum += e.Count
	}
	if s.Cost < 0 || s.Cost != sum {
		return fmt.Errorf("%w: cost %d, additions sum to %d", ErrInvariantViolation, s.Cost, sum)
	}

	ext := s.Extended(h)
	for i, m := range s.Mappings {
		if c := multigraph.Cost(g, ext, m); c != 0 {
			return fmt.Errorf("%w: mapping %d still costs %d on the extended host", ErrInvariantViolation, i, c)
		}
	}

	return nil
}

// Extended returns a copy of h with the Additions applied.
// Complexity: O(n2² + |Additions|).
func (s *Solution) Extended(h *multigraph.Graph) *multigraph.Graph {
	ext := h.Clone()
	for _, e := range s.Additions {
		ext.Raise(e.From, e.To, h.Edge(e.From, e.To)+e.Count)
	}

	return ext
}
