// Package extension - k-subset arithmetic for the exact engine.
//
// Lexicographic combinatorial number system: overflow-guarded counts,
// unranking, successor and contiguous range splitting.

package extension

import (
	"math"
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

// subsetCount returns C(m, k) after checking that m·C(m, k) fits an int.
//
// The headroom covers every binomial evaluated while unranking: those are
// C(a, b) with b ≤ k and a − b ≤ m − k, hence ≤ C(m, k), and
// combin.Binomial's intermediate products stay below a·C(a, b) ≤ m·C(m, k).
//
// ok is false when the guard fails. Requires 0 ≤ k ≤ m.
func subsetCount(m, k int) (count int, ok bool) {
	if k > m-k {
		k = m - k
	}
	var (
		b      uint64 = 1
		hi, lo uint64
		i      int
	)
	for i = 1; i <= k; i++ {
		// b ← b·(m−k+i)/i is exact at every step.
		hi, lo = bits.Mul64(b, uint64(m-k+i))
		if hi >= uint64(i) {
			return 0, false
		}
		b, _ = bits.Div64(hi, lo, uint64(i))
		if b > math.MaxInt {
			return 0, false
		}
	}
	if m > 0 && b > uint64(math.MaxInt/m) {
		return 0, false
	}

	return combin.Binomial(m, k), true
}

// binom is C(n, r) with C(n, r) = 0 for r > n or n < 0.
func binom(n, r int) int {
	if n < 0 || r < 0 || r > n {
		return 0
	}

	return combin.Binomial(n, r)
}

// unrankSubset writes into dst the k = len(dst) element subset of [0, m) at
// lexicographic rank idx.
//
// Contracts: 0 ≤ idx < C(m, k), guarded by subsetCount.
// Complexity: O(m) binomials.
func unrankSubset(dst []int, m, idx int) {
	var (
		k    = len(dst)
		x    int
		i, c int
	)
	for i = 0; i < k; i++ {
		for {
			c = binom(m-x-1, k-i-1)
			if idx < c {
				break
			}
			idx -= c
			x++
		}
		dst[i] = x
		x++
	}
}

// nextSubset advances c to its lexicographic successor among the k-subsets
// of [0, m) and reports false when c was the last one.
// Complexity: O(k).
func nextSubset(c []int, m int) bool {
	k := len(c)
	i := k - 1
	for i >= 0 && c[i] == m-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	c[i]++
	var j int
	for j = i + 1; j < k; j++ {
		c[j] = c[j-1] + 1
	}

	return true
}

// splitRange returns the half-open bounds of part w of [0, total) cut into
// parts contiguous pieces whose sizes differ by at most one.
func splitRange(total, parts, w int) (lo, hi int) {
	q, r := total/parts, total%parts
	lo = w*q + min(w, r)
	hi = lo + q
	if w < r {
		hi++
	}

	return lo, hi
}
