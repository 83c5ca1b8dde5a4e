// Package seqgen builds sequences: from generator callables, by
// replication and repetition, by padding, and by sliding windows.
//
// 🚀 What is seqgen?
//
//	The constructive counterpart to combinat's enumeration:
//	  • Generate / GenerateByIndex — call f amount times, collect results
//	  • Repeat    — n concatenated copies of a slice
//	  • Replicate — n copies of a single value
//	  • FillLeft / FillRight — pad a slice up to a minimum size
//	  • Infixes   — every contiguous fixed-length window, in order
//
// ✨ Guarantees:
//
//   - Generator calls happen strictly in index order 0..amount-1, on the
//     caller's goroutine, with no caching between calls
//   - Every window from Infixes owns its backing array; mutating the input
//     afterwards never changes a result
//   - Degenerate requests (zero counts, inputs shorter than a window) yield
//     empty results — the only error in the package is ErrWindowLength for
//     a non-positive window size
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combi/seqgen"
//
//	squares := seqgen.GenerateByIndex(func(i int) int { return i * i }, 5)
//	// [0 1 4 9 16]
//
//	windows, err := seqgen.Infixes(3, []int{1, 2, 3, 4, 5, 6})
//	// [[1 2 3] [2 3 4] [3 4 5] [4 5 6]], err == nil
package seqgen
