package mapping

import (
	"math"
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

// Count returns P(n2, n1) = n2!/(n2−n1)!, the number of injective mappings
// from n1 pattern vertices into n2 host vertices. It is 0 when n2 < n1 and
// 1 when n1 == 0.
//
// Errors: ErrNegativeSize, ErrCountOverflow.
// Complexity: O(n1).
func Count(n1, n2 int) (int, error) {
	if n1 < 0 || n2 < 0 {
		return 0, ErrNegativeSize
	}
	if n2 < n1 {
		return 0, nil
	}
	// Falling product is monotone, so checking the final value bounds every
	// intermediate product of combin.NumPermutations as well.
	if !fitsFalling(n2, n1) {
		return 0, ErrCountOverflow
	}

	return combin.NumPermutations(n2, n1), nil
}

// fitsFalling reports whether n·(n−1)·…·(n−r+1) ≤ math.MaxInt.
func fitsFalling(n, r int) bool {
	var (
		p  uint64 = 1
		hi uint64
		i  int
	)
	for i = 0; i < r; i++ {
		hi, p = bits.Mul64(p, uint64(n-i))
		if hi != 0 || p > math.MaxInt {
			return false
		}
	}

	return true
}

// blockSizes returns b where b[d] = P(n2−1−d, n1−1−d): the number of
// completions that share a fixed prefix of length d+1. b[0]·n2 == Count.
// The caller guarantees Count(n1, n2) fits.
func blockSizes(n1, n2 int) []int {
	b := make([]int, n1)
	if n1 == 0 {
		return b
	}
	b[n1-1] = 1
	var d int
	for d = n1 - 2; d >= 0; d-- {
		b[d] = b[d+1] * (n2 - 1 - d)
	}

	return b
}

// Unrank returns the mapping at position idx of the enumeration order.
//
// Errors: ErrNegativeSize, ErrCountOverflow, ErrRankOutOfRange.
// Complexity: O(n1·n2).
func Unrank(n1, n2, idx int) (Mapping, error) {
	total, err := Count(n1, n2)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= total {
		return nil, ErrRankOutOfRange
	}
	out := make(Mapping, n1)
	unrankInto(out, make([]bool, n2), blockSizes(n1, n2), n2, idx)

	return out, nil
}

// unrankInto writes the mapping of rank idx into dst and marks its targets
// in used (which must be all false on entry).
func unrankInto(dst Mapping, used []bool, blocks []int, n2, idx int) {
	var (
		d, q, t int
	)
	for d = range dst {
		q = idx / blocks[d]
		idx %= blocks[d]
		// Pick the q-th unused target in ascending order.
		for t = 0; t < n2; t++ {
			if used[t] {
				continue
			}
			if q == 0 {
				break
			}
			q--
		}
		dst[d] = t
		used[t] = true
	}
}

// Rank returns the position of m in the enumeration order for host order n2.
//
// Errors: those of Validate and Count.
// Complexity: O(n1·n2).
func Rank(m Mapping, n2 int) (int, error) {
	if err := m.Validate(n2); err != nil {
		return 0, err
	}
	if _, err := Count(len(m), n2); err != nil {
		return 0, err
	}
	var (
		blocks = blockSizes(len(m), n2)
		used   = make([]bool, n2)
		idx    int
		d, t   int
		below  int
	)
	for d = range m {
		below = 0
		for t = 0; t < m[d]; t++ {
			if !used[t] {
				below++
			}
		}
		idx += below * blocks[d]
		used[m[d]] = true
	}

	return idx, nil
}
