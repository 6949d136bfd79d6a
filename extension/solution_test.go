package extension_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/demand"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/extension"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/mapping"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

func solvedPath(t *testing.T) (*multigraph.Graph, *multigraph.Graph, *extension.Solution) {
	t.Helper()
	g := mustGraph(t, [][]int{
		{0, 2, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	h := mustGraph(t, [][]int{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})
	sol, err := extension.SolveExact(context.Background(), g, h, 3)
	require.NoError(t, err)

	return g, h, sol
}

// TestSolution_Idempotent: once the additions are applied, the same mapping
// set costs nothing, and solving again needs no further edges.
func TestSolution_Idempotent(t *testing.T) {
	g, h, sol := solvedPath(t)
	ext := sol.Extended(h)

	ds := make([]*demand.Matrix, len(sol.Mappings))
	for i, f := range sol.Mappings {
		assert.Zero(t, multigraph.Cost(g, ext, f))
		ds[i] = demand.FromMapping(g, f)
	}
	assert.Zero(t, demand.CombinedCost(ext, ds...))
	assert.Equal(t, h.Size()+sol.Cost, ext.Size())

	again, err := extension.SolveExact(context.Background(), g, ext, 3)
	require.NoError(t, err)
	assert.Zero(t, again.Cost)

	// h itself is unchanged.
	assert.Equal(t, 3, h.Size())
}

func TestSolution_VerifyDetectsTampering(t *testing.T) {
	g, h, sol := solvedPath(t)
	require.NoError(t, sol.Verify(g, h))
	require.NotEmpty(t, sol.Additions)

	bad := *sol
	bad.Cost++
	assert.ErrorIs(t, bad.Verify(g, h), extension.ErrInvariantViolation)

	bad = *sol
	bad.Additions = append([]demand.Entry(nil), sol.Additions...)
	bad.Additions[0].Count++
	assert.ErrorIs(t, bad.Verify(g, h), extension.ErrInvariantViolation)

	bad = *sol
	bad.Additions = sol.Additions[1:]
	assert.ErrorIs(t, bad.Verify(g, h), extension.ErrInvariantViolation)

	bad = *sol
	bad.Mappings = []mapping.Mapping{sol.Mappings[0], sol.Mappings[0].Clone(), sol.Mappings[2]}
	assert.ErrorIs(t, bad.Verify(g, h), extension.ErrInvariantViolation)

	bad = *sol
	bad.Mappings = []mapping.Mapping{{0, 0, 1}}
	assert.ErrorIs(t, bad.Verify(g, h), extension.ErrInvariantViolation)

	bad = *sol
	bad.Mappings = []mapping.Mapping{{0, 1}}
	assert.ErrorIs(t, bad.Verify(g, h), extension.ErrInvariantViolation)

	assert.ErrorIs(t, sol.Verify(nil, h), extension.ErrNilGraph)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "optimal", extension.StatusOptimal.String())
	assert.Equal(t, "approximate", extension.StatusApproximate.String())
	assert.Equal(t, "aborted", extension.StatusAborted.String())
	assert.Equal(t, "Status(9)", extension.Status(9).String())
}
