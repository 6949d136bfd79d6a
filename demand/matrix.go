// SPDX-License-Identifier: MIT

package demand

import (
	"fmt"
	"slices"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

// Edge is a directed host edge From→To.
type Edge struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Entry pairs a host edge with a multiplicity (a demand or an addition).
type Entry struct {
	Edge  `yaml:",inline"`
	Count int `yaml:"count"`
}

// String renders the entry as "i->j xc".
func (e Entry) String() string { return fmt.Sprintf("%d->%d x%d", e.From, e.To, e.Count) }

// Matrix is a sparse host-edge → required multiplicity map.
// The zero value is not usable; use NewMatrix, FromMapping or Combine.
type Matrix struct {
	m map[Edge]int
}

// NewMatrix returns an empty demand matrix.
func NewMatrix() *Matrix { return &Matrix{m: make(map[Edge]int)} }

// FromMapping derives the demand of mapping f of pattern g.
// Only positive pattern entries produce keys.
//
// Contracts: len(f) == g.Order(), f injective (unchecked).
// Complexity: O(n1²).
func FromMapping(g *multigraph.Graph, f []int) *Matrix {
	d := NewMatrix()
	var (
		n    = g.Order()
		u, v int
		c    int
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if c = g.Edge(u, v); c > 0 {
				d.m[Edge{From: f[u], To: f[v]}] = c
			}
		}
	}

	return d
}

// Lift raises the demand on e to at least c.
func (d *Matrix) Lift(e Edge, c int) {
	if c > d.m[e] {
		d.m[e] = c
	}
}

// At returns the demand on i→j (0 when absent).
func (d *Matrix) At(i, j int) int { return d.m[Edge{From: i, To: j}] }

// Len returns the number of keyed host edges.
func (d *Matrix) Len() int { return len(d.m) }

// Total returns the sum of all demands.
func (d *Matrix) Total() int {
	var s, c int
	for _, c = range d.m {
		s += c
	}

	return s
}

// Entries returns the demands sorted by (From, To).
func (d *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(d.m))
	for e, c := range d.m {
		out = append(out, Entry{Edge: e, Count: c})
	}
	sortEntries(out)

	return out
}

// Deficit returns, sorted by (From, To), the edges that must be added to h so
// that it meets every demand: max(0, d(i,j) − A_h[i][j]) for each keyed edge,
// zero entries omitted.
//
// Contracts: every keyed edge lies inside h (unchecked).
func (d *Matrix) Deficit(h *multigraph.Graph) []Entry {
	out := make([]Entry, 0, len(d.m))
	var have int
	for e, c := range d.m {
		have = h.Edge(e.From, e.To)
		if c > have {
			out = append(out, Entry{Edge: e, Count: c - have})
		}
	}
	sortEntries(out)

	return out
}

// Cost returns Σ max(0, d(i,j) − A_h[i][j]).
func (d *Matrix) Cost(h *multigraph.Graph) int {
	var total, have int
	for e, c := range d.m {
		have = h.Edge(e.From, e.To)
		if c > have {
			total += c - have
		}
	}

	return total
}

// Combine returns the elementwise maximum of ds; absent entries count as 0.
// Nil matrices are skipped. Inputs are not modified.
func Combine(ds ...*Matrix) *Matrix {
	out := NewMatrix()
	for _, d := range ds {
		if d == nil {
			continue
		}
		for e, c := range d.m {
			out.Lift(e, c)
		}
	}

	return out
}

// CombinedCost is Combine(ds...).Cost(h).
func CombinedCost(h *multigraph.Graph, ds ...*Matrix) int {
	return Combine(ds...).Cost(h)
}

func sortEntries(es []Entry) {
	slices.SortFunc(es, func(a, b Entry) int {
		if a.From != b.From {
			return a.From - b.From
		}
		return a.To - b.To
	})
}
