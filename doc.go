// Package kext finds the cheapest way to make a host multigraph contain k
// copies of a pattern multigraph.
//
// 🚀 What is kext?
//
//	Given a pattern G and a host H (directed, parallel edges counted),
//	pick k distinct injective placements of G's vertices into H's and add
//	the fewest parallel edges to H so every placement embeds G. Copies
//	routed through the same host edge share the added edges.
//
// ✨ What is inside:
//
//	multigraph/ — immutable adjacency-count graphs, validation, gonum adapters
//	mapping/    — injective mappings: lazy enumerator, rank/unrank, counting
//	demand/     — per-mapping edge demand, max-combination, deficits
//	extension/  — Exact (parallel k-subset search) and Approx (greedy) solvers
//	report/     — text and YAML rendering of a Solution
//	config/     — viper settings, zerolog logger
//	metrics/    — prometheus collector for solver runs
//	examples/   — runnable replica placement demo
//
// Quick ASCII example:
//
//	G: a → b          H: 0 → 1   2
//
//	k = 2 placements {a→0, b→1} and {a→0, b→2} cost one new edge 0 → 2.
//
//	go get github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension
package kext
