// SPDX-License-Identifier: MIT
// Package: multigraph
//
// Purpose:
//   - Interoperate with gonum: import from mat.Matrix and from any
//     graph.DirectedMultigraph, export to *multi.DirectedGraph.
//
// Determinism:
//   - Imported vertices are indexed by ascending gonum node ID.
//   - Exported node IDs equal vertex indices; lines are created in i→j order.

package multigraph

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/mat"
)

// FromMatrix builds a graph from a square gonum matrix whose entries are
// finite, integral and within [0, MaxMultiplicity].
//
// Errors: *FormatError wrapping ErrDimensionMismatch (non-square),
// ErrNonIntegral, ErrNegativeCount or ErrCountOverflow; ErrNilGraph for nil.
// Complexity: O(n²).
func FromMatrix(m mat.Matrix) (*Graph, error) {
	if m == nil {
		return nil, ErrNilGraph
	}
	r, c := m.Dims()
	if r != c {
		return nil, formatErrorf(-1, -1, ErrDimensionMismatch)
	}

	g := &Graph{n: r, adj: make([]int, r*r)}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			x = m.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
				return nil, formatErrorf(i, j, ErrNonIntegral)
			}
			if x < 0 {
				return nil, formatErrorf(i, j, ErrNegativeCount)
			}
			if x > MaxMultiplicity {
				return nil, formatErrorf(i, j, ErrCountOverflow)
			}
			g.adj[i*r+j] = int(x)
		}
	}

	return g, nil
}

// FromDirectedMultigraph counts the parallel lines of a gonum directed
// multigraph. Vertex i of the result is the node with the i-th smallest ID;
// the returned ids slice maps vertex index → gonum node ID.
//
// Errors: ErrNilGraph for nil; *FormatError wrapping ErrCountOverflow when a
// node pair carries more than MaxMultiplicity lines.
// Complexity: O(V log V + V² + L) where L is the number of lines.
func FromDirectedMultigraph(src graph.DirectedMultigraph) (*Graph, []int64, error) {
	if src == nil {
		return nil, nil, ErrNilGraph
	}

	// Stage 1: canonical vertex order by node ID.
	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes))
	var i int
	for i = range nodes {
		ids[i] = nodes[i].ID()
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	index := make(map[int64]int, len(ids))
	for i = range ids {
		index[ids[i]] = i
	}

	// Stage 2: count lines for every successor pair.
	n := len(ids)
	g := &Graph{n: n, adj: make([]int, n*n)}
	var (
		to    graph.Nodes
		lines graph.Lines
		vid   int64
		cnt   int
	)
	for i = 0; i < n; i++ {
		to = src.From(ids[i])
		for to.Next() {
			vid = to.Node().ID()
			cnt = 0
			lines = src.Lines(ids[i], vid)
			for lines.Next() {
				cnt++
			}
			if cnt > MaxMultiplicity {
				return nil, nil, formatErrorf(i, index[vid], ErrCountOverflow)
			}
			g.adj[i*n+index[vid]] = cnt
		}
	}

	return g, ids, nil
}

// DirectedMultigraph exports g as a gonum multigraph whose node IDs are the
// vertex indices 0..n-1 and which carries adj[i][j] parallel lines i→j.
// Complexity: O(n² + Size()).
func (g *Graph) DirectedMultigraph() *multi.DirectedGraph {
	out := multi.NewDirectedGraph()
	var (
		i, j, c int
		from    graph.Node
	)
	for i = 0; i < g.n; i++ {
		out.AddNode(multi.Node(i))
	}
	for i = 0; i < g.n; i++ {
		from = out.Node(int64(i))
		for j = 0; j < g.n; j++ {
			for c = 0; c < g.adj[i*g.n+j]; c++ {
				out.SetLine(out.NewLine(from, out.Node(int64(j))))
			}
		}
	}

	return out
}
