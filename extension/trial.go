// Package extension - randomized greedy construction of one trial mapping.
//
// Complexity: O(n1²·n2) per trial, buffers reused per worker.

package extension

import (
	"math/rand/v2"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/mapping"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

// trialBuilder runs the randomized constructive heuristic that produces one
// candidate mapping per trial. Buffers are reused across trials; one builder
// per worker.
type trialBuilder struct {
	g, work *multigraph.Graph
	n1, n2  int
	order   []int // random visiting order of pattern vertices
	placed  []int // pattern vertices assigned so far
	f       []int
	used    []bool
}

func newTrialBuilder(g, work *multigraph.Graph) *trialBuilder {
	n1, n2 := g.Order(), work.Order()

	return &trialBuilder{
		g:      g,
		work:   work,
		n1:     n1,
		n2:     n2,
		order:  make([]int, n1),
		placed: make([]int, 0, n1),
		f:      make([]int, n1),
		used:   make([]bool, n2),
	}
}

// deficit is max(0, need − have).
func deficit(need, have int) int {
	if need > have {
		return need - have
	}

	return 0
}

// marginal is the cost added by mapping pattern vertex u to host vertex t
// given the vertices already placed: its self-loop plus both directions
// towards every placed vertex, measured against the working host.
// Complexity: O(n1).
func (b *trialBuilder) marginal(u, t int) int {
	c := deficit(b.g.Edge(u, u), b.work.Edge(t, t))
	var v, fv int
	for _, v = range b.placed {
		fv = b.f[v]
		c += deficit(b.g.Edge(u, v), b.work.Edge(t, fv))
		c += deficit(b.g.Edge(v, u), b.work.Edge(fv, t))
	}

	return c
}

// build produces one injective mapping:
//  1. visit pattern vertices in a uniformly random order;
//  2. give each the unused host vertex with the lowest marginal cost,
//     choosing uniformly among ties (reservoir sampling).
//
// Complexity: O(n1²·n2).
func (b *trialBuilder) build(rng *rand.Rand) mapping.Mapping {
	var (
		i, u, t  int
		best, c  int
		bestCost int
		ties     int
	)
	for i = range b.order {
		b.order[i] = i
	}
	rng.Shuffle(len(b.order), func(i, j int) { b.order[i], b.order[j] = b.order[j], b.order[i] })
	clear(b.used)
	b.placed = b.placed[:0]

	for _, u = range b.order {
		best, bestCost, ties = -1, 0, 0
		for t = 0; t < b.n2; t++ {
			if b.used[t] {
				continue
			}
			c = b.marginal(u, t)
			switch {
			case best < 0 || c < bestCost:
				best, bestCost, ties = t, c, 1
			case c == bestCost:
				ties++
				if rng.IntN(ties) == 0 {
					best = t
				}
			}
		}
		b.f[u] = best
		b.used[best] = true
		b.placed = append(b.placed, u)
	}

	return mapping.Mapping(b.f).Clone()
}
