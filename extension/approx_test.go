package extension_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/demand"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/extension"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/mapping"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

func TestSolveApprox_SingleEdgeTwoCopies(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {0, 0}})
	h := emptyGraph(t, 3)

	sol, err := extension.SolveApprox(context.Background(), g, h, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, sol.Cost)
	assert.Equal(t, extension.StatusApproximate, sol.Status)
	assert.Equal(t, extension.Approx, sol.Algorithm)
	assert.Equal(t, 6, sol.TrialsPerStep) // 2·3·1
	assert.GreaterOrEqual(t, sol.Evaluated, 12)
	require.Len(t, sol.Mappings, 2)
	assert.False(t, sol.Mappings[0].Equal(sol.Mappings[1]))
	require.NoError(t, sol.Verify(g, h))
}

// TestSolveApprox_NeverBelowExact checks approx ≥ exact and that every
// approximate solution is a valid, self-consistent extension.
func TestSolveApprox_NeverBelowExact(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 30; iter++ {
		n1 := 1 + r.Intn(3)
		n2 := n1 + r.Intn(3)
		g := randomGraph(t, r, n1, 2, 0.5)
		h := randomGraph(t, r, n2, 2, 0.3)
		total, err := mapping.Count(n1, n2)
		require.NoError(t, err)
		k := 1 + r.Intn(min(3, total))

		ex, err := extension.SolveExact(context.Background(), g, h, k)
		require.NoError(t, err)
		ap, err := extension.SolveApprox(context.Background(), g, h, k, extension.WithSeed(int64(iter)))
		require.NoError(t, err)

		require.GreaterOrEqual(t, ap.Cost, ex.Cost, "iter %d", iter)
		require.Len(t, ap.Mappings, k)
		require.NoError(t, ap.Verify(g, h))

		// The reported cost is the max-combined cost on the original host.
		ds := make([]*demand.Matrix, k)
		for i, f := range ap.Mappings {
			ds[i] = demand.FromMapping(g, f)
		}
		require.Equal(t, demand.CombinedCost(h, ds...), ap.Cost)
	}
}

// TestSolveApprox_Deterministic: the seed alone fixes the result, whatever
// the worker count.
func TestSolveApprox_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	g := randomGraph(t, r, 4, 2, 0.4)
	h := randomGraph(t, r, 7, 2, 0.2)

	ref, err := extension.SolveApprox(context.Background(), g, h, 4,
		extension.WithSeed(42), extension.WithWorkers(1))
	require.NoError(t, err)

	for _, w := range []int{1, 2, 3, 7, 16} {
		sol, err := extension.SolveApprox(context.Background(), g, h, 4,
			extension.WithSeed(42), extension.WithWorkers(w))
		require.NoError(t, err)
		require.Equal(t, ref.Mappings, sol.Mappings, "workers=%d", w)
		require.Equal(t, ref.Cost, sol.Cost)
		require.Equal(t, ref.Evaluated, sol.Evaluated)
	}

	// Seed 0 is the default seed.
	a, err := extension.SolveApprox(context.Background(), g, h, 4)
	require.NoError(t, err)
	b, err := extension.SolveApprox(context.Background(), g, h, 4, extension.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, a.Mappings, b.Mappings)
}

// TestSolveApprox_ExhaustsMappingSpace asks for every mapping that exists, so
// later steps keep drawing duplicates and must fall back to the scan.
func TestSolveApprox_ExhaustsMappingSpace(t *testing.T) {
	g := emptyGraph(t, 1)
	h := emptyGraph(t, 4)

	sol, err := extension.SolveApprox(context.Background(), g, h, 4,
		extension.WithMaxRetries(0), extension.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, sol.Mappings, 4)
	seen := map[int]bool{}
	for _, f := range sol.Mappings {
		seen[f[0]] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 0, sol.Cost)

	// Only two mappings exist; the second step mostly draws the first one
	// again and must still end up with the other.
	g = mustGraph(t, [][]int{{0, 1}, {0, 0}})
	h = mustGraph(t, [][]int{{0, 5}, {0, 0}})
	sol, err = extension.SolveApprox(context.Background(), g, h, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []mapping.Mapping{{0, 1}, {1, 0}}, sol.Mappings)
	assert.Equal(t, 1, sol.Cost)
}

func TestSolveApprox_Infeasible(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {0, 0}})

	_, err := extension.SolveApprox(context.Background(), g, emptyGraph(t, 1), 1)
	assert.ErrorIs(t, err, extension.ErrInfeasible)

	// Only two mappings of 2 into 2.
	_, err = extension.SolveApprox(context.Background(), g, emptyGraph(t, 2), 3)
	assert.ErrorIs(t, err, extension.ErrInfeasible)

	// n2 ≥ n1 with enough mappings is always feasible.
	sol, err := extension.SolveApprox(context.Background(), g, emptyGraph(t, 2), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, sol.Cost)
}

func TestSolveApprox_Multiplier(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {1, 0}})
	h := emptyGraph(t, 5)

	sol, err := extension.SolveApprox(context.Background(), g, h, 1, extension.WithTrialsMultiplier(0.05))
	require.NoError(t, err)
	assert.Equal(t, 1, sol.TrialsPerStep)

	sol, err = extension.SolveApprox(context.Background(), g, h, 1, extension.WithTrialsMultiplier(2.5))
	require.NoError(t, err)
	assert.Equal(t, 25, sol.TrialsPerStep)

	_, err = extension.SolveApprox(context.Background(), g, h, 1, extension.WithTrialsMultiplier(0))
	assert.ErrorIs(t, err, extension.ErrInvalidMultiplier)
	_, err = extension.SolveApprox(context.Background(), g, h, 1, extension.WithTrialsMultiplier(-1))
	assert.ErrorIs(t, err, extension.ErrInvalidMultiplier)
}

// TestSolveApprox_HostUntouched: the working copy is private.
func TestSolveApprox_HostUntouched(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	g := randomGraph(t, r, 3, 3, 0.7)
	h := randomGraph(t, r, 5, 1, 0.2)
	before := h.Clone()

	_, err := extension.SolveApprox(context.Background(), g, h, 3)
	require.NoError(t, err)
	assert.True(t, before.Equal(h))
}

func TestSolveApprox_CancelledBeforeStart(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {0, 0}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := extension.SolveApprox(ctx, g, emptyGraph(t, 4), 2)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, extension.ErrAborted)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolveApprox_AbortKeepsChosen cancels once more than one step worth of
// trials was built and expects the mappings committed so far.
func TestSolveApprox_AbortKeepsChosen(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	g := randomGraph(t, r, 6, 2, 0.5)
	h := randomGraph(t, r, 60, 1, 0.05)
	const k = 50
	trials, err := extension.TrialsPerStep(6, 60, extension.DefaultTrialsMultiplier)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tr := new(extension.Tracker)
	go func() {
		for {
			s := tr.Snapshot()
			if s.Done > int64(trials) || s.Phase == extension.PhaseDone {
				break
			}
			time.Sleep(50 * time.Microsecond)
		}
		cancel()
	}()

	sol, err := extension.SolveApprox(ctx, g, h, k, extension.WithTracker(tr))
	require.ErrorIs(t, err, extension.ErrAborted)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, sol)
	assert.Equal(t, extension.StatusAborted, sol.Status)
	assert.Equal(t, extension.Approx, sol.Algorithm)
	assert.Positive(t, len(sol.Mappings))
	assert.Less(t, len(sol.Mappings), k)
	assert.Equal(t, trials, sol.TrialsPerStep)
	require.NoError(t, sol.Verify(g, h))
}

// TestSolveApprox_ProgressCountsRetries: re-rolled steps extend the total, so
// a finished run reports exactly as much work done as planned.
func TestSolveApprox_ProgressCountsRetries(t *testing.T) {
	// 1 vertex into 3: the last step has one free target out of three, so
	// whole attempts often draw only duplicates.
	g := emptyGraph(t, 1)
	h := emptyGraph(t, 3)

	for seed := int64(0); seed < 20; seed++ {
		tr := new(extension.Tracker)
		sol, err := extension.SolveApprox(context.Background(), g, h, 3,
			extension.WithSeed(seed), extension.WithTracker(tr))
		require.NoError(t, err)

		snap := tr.Snapshot()
		assert.Equal(t, int64(sol.Evaluated), snap.Done, "seed %d", seed)
		assert.Equal(t, snap.Total, snap.Done, "seed %d", seed)
		assert.Zero(t, snap.Total%int64(sol.TrialsPerStep))
	}
}

// TestSolveApprox_LargeHost runs beyond exact reach and checks the result is
// consistent and the pattern copies are distinct.
func TestSolveApprox_LargeHost(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	g := randomGraph(t, r, 6, 2, 0.4)
	h := randomGraph(t, r, 30, 2, 0.15)

	sol, err := extension.SolveApprox(context.Background(), g, h, 5, extension.WithSeed(99))
	require.NoError(t, err)
	require.Len(t, sol.Mappings, 5)
	require.NoError(t, sol.Verify(g, h))

	sum := 0
	for _, f := range sol.Mappings {
		sum += multigraph.Cost(g, h, f)
	}
	assert.LessOrEqual(t, sol.Cost, sum)
}
