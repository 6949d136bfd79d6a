// SPDX-License-Identifier: MIT

package multigraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

// mustGraph builds a graph from rows or fails the test.
func mustGraph(t *testing.T, rows [][]int) *multigraph.Graph {
	t.Helper()
	g, err := multigraph.FromAdjacency(rows)
	require.NoError(t, err)

	return g
}

func TestCost_SingleEdgeOnEmptyHost(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {0, 0}})
	h := mustGraph(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})

	assert.Equal(t, 1, multigraph.Cost(g, h, []int{0, 1}))
	assert.Equal(t, 1, multigraph.Cost(g, h, []int{2, 0}))
}

func TestCost_MultiplicityAndSelfLoops(t *testing.T) {
	// Pattern: 0→1 twice, self-loop on 1 three times.
	g := mustGraph(t, [][]int{{0, 2}, {0, 3}})
	h := mustGraph(t, [][]int{
		{0, 1, 0},
		{0, 1, 5},
		{0, 0, 0},
	})

	// f = [0,1]: 0→1 has 1 (need 2 → +1), loop 1→1 has 1 (need 3 → +2).
	assert.Equal(t, 3, multigraph.Cost(g, h, []int{0, 1}))
	// f = [1,2]: 1→2 has 5 (enough), loop 2→2 has 0 (need 3).
	assert.Equal(t, 3, multigraph.Cost(g, h, []int{1, 2}))
	// f = [2,0]: nothing available.
	assert.Equal(t, 5, multigraph.Cost(g, h, []int{2, 0}))
}

func TestCost_ZeroIffCovered(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	h := mustGraph(t, [][]int{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 1},
		{0, 0, 0, 0},
	})

	assert.True(t, multigraph.Embeds(g, h, []int{0, 1, 2}))
	assert.Equal(t, 0, multigraph.Cost(g, h, []int{0, 1, 2}))
	assert.False(t, multigraph.Embeds(g, h, []int{2, 3, 0}))
	assert.Positive(t, multigraph.Cost(g, h, []int{2, 3, 0}))
}

func TestCost_SurplusNeverNegative(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {0, 0}})
	h := mustGraph(t, [][]int{{7, 7}, {7, 7}})
	assert.Equal(t, 0, multigraph.Cost(g, h, []int{1, 0}))
}

func TestCost_EmptyPattern(t *testing.T) {
	g := mustGraph(t, [][]int{})
	h := mustGraph(t, [][]int{{0}})
	assert.Equal(t, 0, multigraph.Cost(g, h, []int{}))
}
