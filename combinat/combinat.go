package combinat

import (
	"github.com/katalvlaran/combi/container"
)

// The facade operations below share one pipeline: derive the index domain
// [0, n) from the source, enumerate index tuples under the variant's
// predicate (pruning during production), then resolve each surviving tuple
// into elements. Output order is enumeration order; filtering preserves the
// relative order of survivors. Sources are read-only throughout, and every
// returned tuple owns its backing array.

// Product returns all len(xs)^power element tuples of length power over xs,
// in lexicographic index order (first position varies slowest).
//
//	Product(2, []byte("ABCD")) → AA AB AC AD BA BB BC BD CA CB CC CD DA DB DC DD
//
// power == 0 yields a single empty tuple; power < 0 yields no tuples.
func Product[T any](power int, xs []T) [][]T {
	return ProductOf(power, container.Slice[T](xs))
}

// ProductOf is Product over any Sequence capability.
func ProductOf[T any](power int, src container.Sequence[T]) [][]T {
	return gather(power, src, nil, capHint(ProductCount(src.Len(), power)))
}

// Permutations returns all element tuples of length power over xs whose
// source indices are pairwise distinct, in enumeration order.
//
//	Permutations(2, []byte("ABCD")) → AB AC AD BA BC BD CA CB CD DA DB DC
//
// power > len(xs) yields an empty result, not an error.
func Permutations[T any](power int, xs []T) [][]T {
	return PermutationsOf(power, container.Slice[T](xs))
}

// PermutationsOf is Permutations over any Sequence capability.
func PermutationsOf[T any](power int, src container.Sequence[T]) [][]T {
	return gather(power, src, AllUnique, capHint(PermutationCount(src.Len(), power)))
}

// Combinations returns all element tuples of length power over xs whose
// source indices are strictly increasing: each element set appears exactly
// once, in canonical ascending order, with no element repeated in a tuple.
//
//	Combinations(2, []byte("ABCD")) → AB AC AD BC BD CD
//
// power > len(xs) yields an empty result, not an error.
func Combinations[T any](power int, xs []T) [][]T {
	return CombinationsOf(power, container.Slice[T](xs))
}

// CombinationsOf is Combinations over any Sequence capability.
func CombinationsOf[T any](power int, src container.Sequence[T]) [][]T {
	return gather(power, src, IsStrictlySorted, capHint(CombinationCount(src.Len(), power)))
}

// CombinationsWithReplacement returns all element tuples of length power
// over xs whose source indices are non-decreasing: canonical ascending
// order, repeats allowed within a tuple.
//
//	CombinationsWithReplacement(2, []byte("ABCD")) → AA AB AC AD BB BC BD CC CD DD
func CombinationsWithReplacement[T any](power int, xs []T) [][]T {
	return CombinationsWithReplacementOf(power, container.Slice[T](xs))
}

// CombinationsWithReplacementOf is CombinationsWithReplacement over any
// Sequence capability.
func CombinationsWithReplacementOf[T any](power int, src container.Sequence[T]) [][]T {
	return gather(power, src, IsSorted, capHint(CombinationWithReplacementCount(src.Len(), power)))
}

// gather runs the enumerator over src's index domain and resolves each
// surviving index tuple into a fresh element tuple.
func gather[T any](power int, src container.Sequence[T], keep IndexPredicate, hint int) [][]T {
	out := make([][]T, 0, hint)
	enumerate(power, src.Len(), keep, func(idxs []int) {
		tuple := make([]T, len(idxs))
		for i, idx := range idxs {
			tuple[i] = src.At(idx)
		}
		out = append(out, tuple)
	})

	return out
}
