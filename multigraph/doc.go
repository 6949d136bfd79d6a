// SPDX-License-Identifier: MIT

// Package multigraph provides the immutable adjacency-count representation of
// a directed multigraph used by the extension solvers, together with the
// single-mapping cost primitive.
//
// A Graph of order n stores, for every ordered pair (i, j), the number of
// parallel edges i→j (self-loops allowed). Storage is one flat row-major slice
// of n*n non-negative integers, so every entry is always defined.
//
// Construction:
//
//   - New(n)                   — n isolated vertices.
//   - FromRows(n, rows)        — declared order + rows; strict shape checks.
//   - FromAdjacency(rows)      — order taken from len(rows).
//   - FromMatrix(m)            — gonum mat.Matrix with integral, non-negative entries.
//   - FromDirectedMultigraph(g) — gonum graph.Multigraph, line counts per node pair.
//
// Every malformed input is rejected with a *FormatError that matches both
// ErrFormat and the specific cause (ErrDimensionMismatch, ErrNegativeCount,
// ErrCountOverflow, ErrNonIntegral) via errors.Is. Entries are bounded by
// MaxMultiplicity so that cost sums over n² entries can never overflow an int.
//
// Cost:
//
//	Cost(G, H, f) = Σ_{u,v} max(0, G[u][v] − H[f(u)][f(v)])
//
// is the number of edges that must be added to H so that the injective
// mapping f embeds G. It runs in O(n1²) and allocates nothing.
//
// Concurrency: a Graph is safe for concurrent reads. Raise is the only
// mutator and is reserved for private working copies obtained via Clone.
package multigraph
