package combinat

// IndexPredicate decides whether an index tuple belongs in a result set.
// The predicates in this package are prefix-closed: every prefix of an
// accepted tuple is itself accepted, and no extension of a rejected prefix
// can be accepted. The enumerator relies on that to prune rejected prefixes
// during production.
type IndexPredicate func(idxs []int) bool

// AllUnique reports whether no two positions of idxs hold equal values.
// An empty tuple is vacuously unique.
func AllUnique(idxs []int) bool {
	for i := 1; i < len(idxs); i++ {
		for j := 0; j < i; j++ {
			if idxs[j] == idxs[i] {
				return false
			}
		}
	}

	return true
}

// IsSorted reports whether idxs is non-decreasing left to right.
func IsSorted(idxs []int) bool {
	for i := 1; i < len(idxs); i++ {
		if idxs[i] < idxs[i-1] {
			return false
		}
	}

	return true
}

// IsStrictlySorted reports whether idxs is strictly increasing left to right.
func IsStrictlySorted(idxs []int) bool {
	for i := 1; i < len(idxs); i++ {
		if idxs[i] <= idxs[i-1] {
			return false
		}
	}

	return true
}
