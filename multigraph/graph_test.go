// SPDX-License-Identifier: MIT

package multigraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

func TestNew_EmptyAndZero(t *testing.T) {
	g, err := multigraph.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())

	g, err = multigraph.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 0, g.Edge(2, 1))

	_, err = multigraph.New(-1)
	assert.ErrorIs(t, err, multigraph.ErrFormat)
	assert.ErrorIs(t, err, multigraph.ErrNegativeCount)
}

func TestFromRows_Validation(t *testing.T) {
	cases := []struct {
		name string
		n    int
		rows [][]int
		want error
		row  int
		col  int
	}{
		{"too few rows", 2, [][]int{{0, 1}}, multigraph.ErrDimensionMismatch, -1, -1},
		{"ragged row", 2, [][]int{{0, 1}, {0}}, multigraph.ErrDimensionMismatch, 1, -1},
		{"negative", 2, [][]int{{0, -1}, {0, 0}}, multigraph.ErrNegativeCount, 0, 1},
		{"overflow", 2, [][]int{{0, 0}, {multigraph.MaxMultiplicity + 1, 0}}, multigraph.ErrCountOverflow, 1, 0},
		{"negative order", -2, nil, multigraph.ErrNegativeCount, -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := multigraph.FromRows(tc.n, tc.rows)
			require.Error(t, err)
			assert.ErrorIs(t, err, multigraph.ErrFormat)
			assert.ErrorIs(t, err, tc.want)

			var fe *multigraph.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.row, fe.Row)
			assert.Equal(t, tc.col, fe.Col)
		})
	}
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]int{{0, 2}, {1, 0}}
	g, err := multigraph.FromRows(2, rows)
	require.NoError(t, err)

	rows[0][1] = 9
	assert.Equal(t, 2, g.Edge(0, 1), "graph must not alias caller rows")
	assert.Equal(t, [][]int{{0, 2}, {1, 0}}, g.Rows())
	assert.Equal(t, 3, g.Size())
}

func TestAt_Bounds(t *testing.T) {
	g, err := multigraph.FromAdjacency([][]int{{1, 0}, {0, 0}})
	require.NoError(t, err)

	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = g.At(2, 0)
	assert.ErrorIs(t, err, multigraph.ErrOutOfRange)
	_, err = g.At(0, -1)
	assert.ErrorIs(t, err, multigraph.ErrOutOfRange)
}

func TestCloneAndRaise(t *testing.T) {
	g, err := multigraph.FromAdjacency([][]int{{0, 1}, {0, 0}})
	require.NoError(t, err)

	w := g.Clone()
	require.True(t, g.Equal(w))

	assert.False(t, w.Raise(0, 1, 1), "raising to the current value is a no-op")
	assert.True(t, w.Raise(0, 1, 3))
	assert.True(t, w.Raise(1, 1, 2))
	assert.Equal(t, 3, w.Edge(0, 1))
	assert.Equal(t, 2, w.Edge(1, 1))

	// The original is untouched.
	assert.Equal(t, 1, g.Edge(0, 1))
	assert.False(t, g.Equal(w))
}

func TestEqual_NilAndOrder(t *testing.T) {
	var a, b *multigraph.Graph
	assert.True(t, a.Equal(b))

	g2, _ := multigraph.New(2)
	g3, _ := multigraph.New(3)
	assert.False(t, g2.Equal(g3))
	assert.False(t, g2.Equal(nil))
}

func TestString(t *testing.T) {
	g, err := multigraph.FromAdjacency([][]int{{0, 1}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(t, "[0 1]\n[2 0]\n", g.String())
}
