// Package combinat enumerates Cartesian powers, permutations, and
// combinations over arbitrary element sequences, in a fixed, documented
// order.
//
// 🚀 What is combinat?
//
//	Index-based combinatorial enumeration:
//	  1. The input sequence of n elements induces the index domain [0, n).
//	  2. An odometer walks every index tuple of length power in
//	     lexicographic order (most-significant position varies slowest).
//	  3. A predicate filters tuples into the requested variant:
//	       • Permutations               — pairwise-distinct indices
//	       • Combinations               — strictly increasing indices
//	       • CombinationsWithReplacement — non-decreasing indices
//	  4. Surviving index tuples are resolved back into element tuples.
//
// ✨ Key features:
//   - Bit-for-bit reproducible output order across runs and platforms
//   - Prefix pruning: filtered variants never materialize the full n^power
//     Cartesian power; transient memory is proportional to the output
//   - Degenerate requests (power > n for permutations/combinations) yield
//     empty results, never errors
//   - Count helpers (ProductCount & friends) to check feasibility up front
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combi/combinat"
//
//	pairs := combinat.Combinations(2, []string{"A", "B", "C", "D"})
//	// [A B] [A C] [A D] [B C] [B D] [C D]
//
// Performance:
//
//   - Product:  Θ(n^power) time and space — unavoidable, that is the output
//   - Filtered variants: time bounded by the number of surviving prefixes,
//     space O(output)
//
// combinat never guards against n^power blowup; choosing feasible sizes is
// the caller's job. See the count helpers.
package combinat
