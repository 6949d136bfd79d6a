// SPDX-License-Identifier: MIT

// Package demand models the host edges a set of mappings requires.
//
// A demand Matrix maps a host edge (i, j) to the multiplicity some mapping f
// needs there: for every pattern pair (u, v) with A_G[u][v] > 0 the host edge
// (f(u), f(v)) must carry at least A_G[u][v] parallel edges. Because f is
// injective every host edge is the image of at most one pattern pair.
//
// Several demands combine by elementwise maximum. One batch of added edges on
// (i, j) serves every mapping routed through (i, j), so the cost of a set S
// of mappings against host H is
//
//	Σ_{(i,j)} max(0, max_{f∈S} d_f(i,j) − A_H[i][j])
//
// which never exceeds the sum of the individual mapping costs.
//
// Two representations are provided:
//   - Matrix: sparse, allocation-friendly, used for reporting and checks.
//   - Combiner: dense scratch over all host edges with an undo-free Reset
//     proportional to the touched entries; used on hot search paths, one per
//     goroutine.
package demand
