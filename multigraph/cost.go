// SPDX-License-Identifier: MIT

package multigraph

// Cost returns the number of host edges that must be added so that the
// injective mapping f embeds pattern into host:
//
//	Σ_{u,v ∈ V(pattern)} max(0, pattern[u][v] − host[f(u)][f(v)])
//
// Contracts (unchecked, hot path):
//   - len(f) == pattern.Order();
//   - every f[u] lies in [0, host.Order()).
//
// The result is always ≥ 0 and equals 0 iff host[f(u)][f(v)] ≥ pattern[u][v]
// for every pair.
//
// Complexity: O(n1²), no allocations.
func Cost(pattern, host *Graph, f []int) int {
	var (
		n1      = pattern.n
		n2      = host.n
		u, v    int
		need    int
		have    int
		total   int
		rowBase int
	)
	for u = 0; u < n1; u++ {
		rowBase = f[u] * n2
		for v = 0; v < n1; v++ {
			need = pattern.adj[u*n1+v]
			if need == 0 {
				continue
			}
			have = host.adj[rowBase+f[v]]
			if need > have {
				total += need - have
			}
		}
	}

	return total
}

// Embeds reports whether f embeds pattern into host without additions.
// Complexity: O(n1²).
func Embeds(pattern, host *Graph, f []int) bool {
	return Cost(pattern, host, f) == 0
}
