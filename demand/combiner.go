// SPDX-License-Identifier: MIT

package demand

import "github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"

// Pattern is the compiled list of positive pattern entries. Iterating it is
// cheaper than rescanning the n1×n1 adjacency when the pattern is sparse.
type Pattern struct {
	order int
	edges []patternEdge
}

type patternEdge struct {
	u, v  int
	count int
}

// Compile extracts the positive entries of g in row-major order.
// Complexity: O(n1²).
func Compile(g *multigraph.Graph) Pattern {
	p := Pattern{order: g.Order()}
	var (
		u, v int
		c    int
	)
	for u = 0; u < p.order; u++ {
		for v = 0; v < p.order; v++ {
			if c = g.Edge(u, v); c > 0 {
				p.edges = append(p.edges, patternEdge{u: u, v: v, count: c})
			}
		}
	}

	return p
}

// Order returns the pattern vertex count.
func (p Pattern) Order() int { return p.order }

// Len returns the number of positive pattern entries.
func (p Pattern) Len() int { return len(p.edges) }

// Demand returns the sparse demand of mapping f.
func (p Pattern) Demand(f []int) *Matrix {
	d := NewMatrix()
	for _, e := range p.edges {
		d.m[Edge{From: f[e.u], To: f[e.v]}] = e.count
	}

	return d
}

// Combiner accumulates the max-combined demand of several mappings against a
// fixed host and keeps the combined cost up to date incrementally.
//
// Contracts:
//   - not safe for concurrent use; give every goroutine its own Combiner;
//   - the host must not change while the Combiner is in use.
type Combiner struct {
	pat     Pattern
	host    *multigraph.Graph
	n2      int
	need    []int // dense n2×n2 combined demand
	touched []int // indices of need that are non-zero
	cost    int
}

// NewCombiner returns an empty Combiner for pattern p over host h.
// Complexity: O(n2²) memory.
func NewCombiner(p Pattern, h *multigraph.Graph) *Combiner {
	n2 := h.Order()

	return &Combiner{
		pat:  p,
		host: h,
		n2:   n2,
		need: make([]int, n2*n2),
	}
}

// Add merges the demand of mapping f and returns by how much the combined
// cost grew. The result is never negative.
//
// Contracts: len(f) == p.Order(), targets in [0, n2) (unchecked).
// Complexity: O(|p|).
func (c *Combiner) Add(f []int) int {
	var (
		idx, old, have int
		before, after  int
		delta          int
		i, j           int
	)
	for _, e := range c.pat.edges {
		i, j = f[e.u], f[e.v]
		idx = i*c.n2 + j
		old = c.need[idx]
		if e.count <= old {
			continue
		}
		have = c.host.Edge(i, j)
		before, after = old-have, e.count-have
		if before < 0 {
			before = 0
		}
		if after < 0 {
			after = 0
		}
		delta += after - before
		if old == 0 {
			c.touched = append(c.touched, idx)
		}
		c.need[idx] = e.count
	}
	c.cost += delta

	return delta
}

// Cost returns the combined cost of every mapping added since the last Reset.
func (c *Combiner) Cost() int { return c.cost }

// Reset clears the accumulated demand.
// Complexity: O(touched entries).
func (c *Combiner) Reset() {
	for _, idx := range c.touched {
		c.need[idx] = 0
	}
	c.touched = c.touched[:0]
	c.cost = 0
}

// Matrix returns a sparse copy of the accumulated demand.
func (c *Combiner) Matrix() *Matrix {
	d := NewMatrix()
	for _, idx := range c.touched {
		d.m[Edge{From: idx / c.n2, To: idx % c.n2}] = c.need[idx]
	}

	return d
}
