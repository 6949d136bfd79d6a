// SPDX-License-Identifier: MIT
// Package: multigraph
//
// Purpose:
//   - Row-major adjacency-count storage for directed multigraphs.
//   - Strict constructors: shape, sign and magnitude are validated once, so
//     the hot-path accessor Edge can stay unchecked.
//
// Determinism & Performance:
//   - Flat []int buffer, fixed i→j loop orders.
//   - Edge is O(1) with no bounds error path; At is the checked variant.

package multigraph

import (
	"strconv"
	"strings"
)

// MaxMultiplicity bounds every adjacency entry. With entries ≤ 2^24 a cost
// sum over n² pairs fits a 64-bit int for any n below 2^19.
const MaxMultiplicity = 1 << 24

// Graph is an immutable directed multigraph on vertices 0..n-1.
// adj[i*n+j] is the number of parallel edges i→j.
type Graph struct {
	n   int   // vertex count
	adj []int // flat row-major storage, len == n*n
}

// New returns a graph of order n with no edges.
// Returns a *FormatError wrapping ErrNegativeCount when n < 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, formatErrorf(-1, -1, ErrNegativeCount)
	}

	return &Graph{n: n, adj: make([]int, n*n)}, nil
}

// FromRows builds a graph of declared order n from adjacency rows.
//
// Contracts:
//   - len(rows) == n and len(rows[i]) == n for every i (ErrDimensionMismatch).
//   - 0 ≤ rows[i][j] ≤ MaxMultiplicity (ErrNegativeCount / ErrCountOverflow).
//
// The input is copied; later changes to rows do not affect the graph.
// Complexity: O(n²).
func FromRows(n int, rows [][]int) (*Graph, error) {
	// Stage 1: declared order and row count.
	if n < 0 {
		return nil, formatErrorf(-1, -1, ErrNegativeCount)
	}
	if len(rows) != n {
		return nil, formatErrorf(-1, -1, ErrDimensionMismatch)
	}

	// Stage 2: copy with per-cell validation.
	g := &Graph{n: n, adj: make([]int, n*n)}
	var (
		i, j int
		c    int
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, formatErrorf(i, -1, ErrDimensionMismatch)
		}
		for j = 0; j < n; j++ {
			c = rows[i][j]
			if err := checkCount(c); err != nil {
				return nil, formatErrorf(i, j, err)
			}
			g.adj[i*n+j] = c
		}
	}

	return g, nil
}

// FromAdjacency builds a graph whose order is len(rows).
// It is FromRows(len(rows), rows).
func FromAdjacency(rows [][]int) (*Graph, error) {
	return FromRows(len(rows), rows)
}

// checkCount validates one multiplicity.
func checkCount(c int) error {
	if c < 0 {
		return ErrNegativeCount
	}
	if c > MaxMultiplicity {
		return ErrCountOverflow
	}

	return nil
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int { return g.n }

// Edge returns the multiplicity of i→j without bounds validation.
// Callers must guarantee 0 ≤ i, j < Order(); violations panic.
// Complexity: O(1).
func (g *Graph) Edge(i, j int) int { return g.adj[i*g.n+j] }

// At returns the multiplicity of i→j, or ErrOutOfRange.
// Complexity: O(1).
func (g *Graph) At(i, j int) (int, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return 0, ErrOutOfRange
	}

	return g.adj[i*g.n+j], nil
}

// Raise lifts the multiplicity of i→j to at least c and reports whether the
// entry changed. It is the only mutator and must only be used on private
// copies obtained from Clone; solvers never call it on caller-owned graphs.
// Complexity: O(1).
func (g *Graph) Raise(i, j, c int) bool {
	idx := i*g.n + j
	if g.adj[idx] >= c {
		return false
	}
	g.adj[idx] = c

	return true
}

// Clone returns a deep copy of g.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	data := make([]int, len(g.adj))
	copy(data, g.adj)

	return &Graph{n: g.n, adj: data}
}

// Rows returns a freshly allocated [][]int copy of the adjacency.
// Complexity: O(n²).
func (g *Graph) Rows() [][]int {
	out := make([][]int, g.n)
	var i int
	for i = 0; i < g.n; i++ {
		out[i] = make([]int, g.n)
		copy(out[i], g.adj[i*g.n:(i+1)*g.n])
	}

	return out
}

// Size returns the total edge multiplicity Σ adj[i][j].
// Complexity: O(n²).
func (g *Graph) Size() int {
	var s, c int
	for _, c = range g.adj {
		s += c
	}

	return s
}

// Equal reports whether g and o have the same order and identical entries.
// Two nil graphs are equal.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.n != o.n {
		return false
	}
	var idx int
	for idx = range g.adj {
		if g.adj[idx] != o.adj[idx] {
			return false
		}
	}

	return true
}

// String renders the adjacency one row per line, e.g. "[0 1]\n[0 0]\n".
func (g *Graph) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < g.n; i++ {
		b.WriteByte('[')
		for j = 0; j < g.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(g.adj[i*g.n+j]))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
