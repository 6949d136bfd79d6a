package mapping

import "errors"

// Enumerator lazily yields every injective mapping [0,n1) → [0,n2) in
// lexicographic order.
//
// The choice points of the backtracking search live in an explicit frame
// arena: next[d] is the smallest target still to be tried at depth d, cur[d]
// the target currently assigned and used the occupied-target set. Suspending
// between two Next calls therefore costs nothing and Seek can rebuild the
// frames for any rank directly.
//
// An Enumerator is not safe for concurrent use; parallel callers partition
// the rank space and give every worker its own Enumerator.
type Enumerator struct {
	n1, n2  int
	total   int
	blocks  []int
	cur     Mapping
	next    []int
	used    []bool
	depth   int
	emitted int
	done    bool
}

// NewEnumerator returns an Enumerator positioned at rank 0.
//
// An Enumerator whose mapping count does not fit an int still enumerates;
// only Total (which reports -1) and Seek (ErrCountOverflow) are affected.
//
// Errors: ErrNegativeSize.
// Complexity: O(n1 + n2) memory.
func NewEnumerator(n1, n2 int) (*Enumerator, error) {
	total, err := Count(n1, n2)
	switch {
	case errors.Is(err, ErrCountOverflow):
		total = -1
	case err != nil:
		return nil, err
	}
	e := &Enumerator{
		n1:    n1,
		n2:    n2,
		total: total,
		cur:   make(Mapping, n1),
		next:  make([]int, n1),
		used:  make([]bool, n2),
	}
	if total > 0 {
		e.blocks = blockSizes(n1, n2)
	}
	e.Reset()

	return e, nil
}

// Total returns Count(n1, n2), or -1 when it does not fit an int.
func (e *Enumerator) Total() int { return e.total }

// Emitted returns the rank of the next mapping Next would yield, i.e. how
// many mappings precede the cursor.
func (e *Enumerator) Emitted() int { return e.emitted }

// Reset rewinds the Enumerator to rank 0.
func (e *Enumerator) Reset() {
	clear(e.used)
	clear(e.next)
	e.depth = 0
	e.emitted = 0
	e.done = e.total == 0
}

// Seek positions the Enumerator so that the next call to Next yields the
// mapping of rank idx. Seek(Total()) exhausts the Enumerator.
//
// Errors: ErrRankOutOfRange, ErrCountOverflow.
// Complexity: O(n1·n2).
func (e *Enumerator) Seek(idx int) error {
	if e.total < 0 {
		return ErrCountOverflow
	}
	if idx < 0 || idx > e.total {
		return ErrRankOutOfRange
	}
	if idx == 0 {
		e.Reset()
		return nil
	}
	if idx == e.total {
		e.emitted = e.total
		e.done = true
		return nil
	}

	clear(e.used)
	unrankInto(e.cur, e.used, e.blocks, e.n2, idx)
	var d int
	for d = range e.cur {
		e.next[d] = e.cur[d] + 1
	}
	// A full frame stack means "emit cur next".
	e.depth = e.n1
	e.emitted = idx
	e.done = false

	return nil
}

// Next returns the next mapping and true, or nil and false once every
// mapping has been produced. The returned Mapping is a fresh copy.
// Complexity: amortized O(n2) per mapping.
func (e *Enumerator) Next() (Mapping, bool) {
	if e.done {
		return nil, false
	}
	if e.n1 == 0 {
		e.done = true
		e.emitted = 1
		return Mapping{}, true
	}

	var d, t int
	for {
		if e.depth == e.n1 {
			out := e.cur.Clone()
			e.emitted++
			// Pop the leaf so the following call resumes at its successor.
			e.depth--
			e.used[e.cur[e.depth]] = false
			return out, true
		}
		if e.depth < 0 {
			e.done = true
			return nil, false
		}

		d = e.depth
		t = e.next[d]
		for t < e.n2 && e.used[t] {
			t++
		}
		if t == e.n2 {
			// Frame exhausted: backtrack and release the parent's target.
			e.depth--
			if e.depth >= 0 {
				e.used[e.cur[e.depth]] = false
			}
			continue
		}

		e.cur[d] = t
		e.used[t] = true
		e.next[d] = t + 1
		e.depth++
		if e.depth < e.n1 {
			e.next[e.depth] = 0
		}
	}
}

// Collect returns all Count(n1, n2) mappings in enumeration order.
//
// Errors: ErrNegativeSize, and ErrTooMany when the count exceeds limit
// (including counts beyond int range).
func Collect(n1, n2, limit int) ([]Mapping, error) {
	e, err := NewEnumerator(n1, n2)
	if err != nil {
		return nil, err
	}
	if e.total < 0 || e.total > limit {
		return nil, ErrTooMany
	}

	out := make([]Mapping, 0, e.total)
	for {
		m, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, m)
	}

	return out, nil
}
