package mapping

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNegativeSize is returned when a vertex count is negative.
	ErrNegativeSize = errors.New("mapping: negative vertex count")

	// ErrCountOverflow is returned when the number of mappings does not fit an int.
	ErrCountOverflow = errors.New("mapping: mapping count overflows int")

	// ErrRankOutOfRange is returned by Unrank/Seek for ranks outside [0, Count).
	ErrRankOutOfRange = errors.New("mapping: rank out of range")

	// ErrTooMany is returned by Collect when Count exceeds the requested limit.
	ErrTooMany = errors.New("mapping: too many mappings to materialize")

	// ErrNotInjective is returned when two domain vertices share a target.
	ErrNotInjective = errors.New("mapping: mapping is not injective")

	// ErrOutOfRange is returned when a target lies outside [0, n2).
	ErrOutOfRange = errors.New("mapping: target out of range")
)

// Mapping assigns host vertex m[u] to pattern vertex u.
// Mappings produced by this package are fresh slices owned by the caller.
type Mapping []int

// Validate checks that m is injective with every target in [0, n2).
// Complexity: O(len(m) + n2).
func (m Mapping) Validate(n2 int) error {
	if n2 < 0 {
		return ErrNegativeSize
	}
	seen := make([]bool, n2)
	var t int
	for _, t = range m {
		if t < 0 || t >= n2 {
			return ErrOutOfRange
		}
		if seen[t] {
			return ErrNotInjective
		}
		seen[t] = true
	}

	return nil
}

// Equal reports whether m and o are the same sequence.
func (m Mapping) Equal(o Mapping) bool {
	if len(m) != len(o) {
		return false
	}
	var i int
	for i = range m {
		if m[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns a copy of m.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	copy(out, m)

	return out
}

// Key returns a compact string identifying the sequence, suitable as a map
// key for duplicate detection. Distinct sequences have distinct keys.
func (m Mapping) Key() string {
	buf := make([]byte, 0, len(m)*3)
	var i int
	for i = range m {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(m[i]), 10)
	}

	return string(buf)
}

// String renders the mapping as "[t0 t1 …]".
func (m Mapping) String() string {
	var b strings.Builder
	b.WriteByte('[')
	var i int
	for i = range m {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(m[i]))
	}
	b.WriteByte(']')

	return b.String()
}
