// Package mapping enumerates injective vertex mappings from a pattern graph
// of order n1 into a host graph of order n2.
//
// A Mapping is a sequence of n1 distinct targets in [0, n2): Mapping[u] is the
// host vertex assigned to pattern vertex u. There are
//
//	P(n2, n1) = n2! / (n2 − n1)!
//
// of them (none when n2 < n1, exactly one, the empty mapping, when n1 = 0).
//
// Enumeration order is fixed: ascending by domain position, then ascending
// target at each choice point, i.e. lexicographic order of the sequences.
// The same order defines ranks: Rank and Unrank are a bijection between
// [0, P(n2, n1)) and mappings, so a caller can partition the mapping space
// into independent ranges without a shared cursor.
//
// Enumerator keeps its choice points in an explicit frame arena instead of
// the call stack. It is lazy (one mapping per Next), finite, restartable
// (Reset) and seekable (Seek). Memory is O(n1 + n2) regardless of how many
// mappings exist; Collect materializes the full set only under a caller-given
// bound.
//
// Errors:
//   - ErrNegativeSize   if n1 or n2 is negative.
//   - ErrCountOverflow  if P(n2, n1) does not fit an int.
//   - ErrRankOutOfRange if a rank is outside [0, P(n2, n1)).
//   - ErrTooMany        if Collect would exceed its limit.
//   - ErrNotInjective / ErrOutOfRange from Mapping.Validate.
package mapping
