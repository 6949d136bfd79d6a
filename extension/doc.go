// Package extension computes minimal k-isomorphic subgraph extensions.
//
// Given a pattern multigraph G (order n1) and a host multigraph H (order n2),
// find k pairwise distinct injective mappings f: V(G) → V(H) and the fewest
// parallel edges to add to H so that every f embeds G:
//
//	cost(S) = Σ_{(i,j)} max(0, max_{f∈S} d_f(i,j) − A_H[i][j])
//
// where d_f is the demand of f (see package demand). Added edges are shared
// between mappings routed through the same host edge.
//
// Two engines are provided:
//
//   - Exact (SolveExact) scores all C(|ℱ|, k) subsets of the P(n2, n1)
//     injective mappings. The subset rank space is cut into contiguous ranges,
//     one goroutine each; workers prune against a shared atomic bound and the
//     lowest-ranked optimum wins, so the result does not depend on the worker
//     count. Practical only for tiny instances.
//
//   - Approx (SolveApprox) runs Sequential Greedy Extension: k steps, each
//     building T = ceil(n1·n2·multiplier) randomized greedy trials against a
//     working copy of H, keeping the cheapest distinct one and raising the
//     working copy so it embeds. Every trial draws from its own seeded
//     stream, so results depend on Options.Seed only. The final cost is
//     recomputed against the untouched H and is never below the exact
//     optimum. Time O(k·T·n1²·n2).
//
// Both engines honour context cancellation and report progress through a
// Tracker (pull) and an optional ProgressFunc (push). Results are Solution
// values whose edge additions are self-checked on assembly.
//
// Errors:
//   - ErrNilGraph, ErrInvalidK, ErrInvalidOption, ErrInvalidMultiplier.
//   - *InfeasibleError / ErrInfeasible when fewer than k mappings exist.
//   - ErrSearchSpaceTooLarge when the exact search space is out of range.
//   - ErrAborted (joined with the context error) on cancellation.
//   - ErrInvariantViolation, carried by panics only.
package extension
