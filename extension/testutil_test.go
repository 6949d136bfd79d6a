package extension_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/demand"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/mapping"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

func mustGraph(t testing.TB, rows [][]int) *multigraph.Graph {
	t.Helper()
	g, err := multigraph.FromAdjacency(rows)
	require.NoError(t, err)

	return g
}

func emptyGraph(t testing.TB, n int) *multigraph.Graph {
	t.Helper()
	g, err := multigraph.New(n)
	require.NoError(t, err)

	return g
}

// randomGraph returns an n-vertex graph with entries in [0, maxC], each
// non-zero with probability density.
func randomGraph(t testing.TB, r *rand.Rand, n, maxC int, density float64) *multigraph.Graph {
	t.Helper()
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			if r.Float64() < density {
				rows[i][j] = 1 + r.Intn(maxC)
			}
		}
	}

	return mustGraph(t, rows)
}

// bruteForce scores every k-subset of mappings in lexicographic order and
// returns the first minimal one with its cost.
func bruteForce(t testing.TB, g, h *multigraph.Graph, k int) ([]mapping.Mapping, int) {
	t.Helper()
	all, err := mapping.Collect(g.Order(), h.Order(), 1<<16)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), k)

	ds := make([]*demand.Matrix, len(all))
	for i, f := range all {
		ds[i] = demand.FromMapping(g, f)
	}

	var (
		best     []int
		bestCost = -1
		pick     = make([]int, 0, k)
		rec      func(from int)
	)
	rec = func(from int) {
		if len(pick) == k {
			sel := make([]*demand.Matrix, k)
			for i, idx := range pick {
				sel[i] = ds[idx]
			}
			if c := demand.CombinedCost(h, sel...); bestCost < 0 || c < bestCost {
				bestCost = c
				best = append(best[:0], pick...)
			}
			return
		}
		for i := from; i < len(all); i++ {
			pick = append(pick, i)
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)

	out := make([]mapping.Mapping, k)
	for i, idx := range best {
		out[i] = all[idx]
	}

	return out, bestCost
}
