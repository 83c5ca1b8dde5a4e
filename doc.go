// Package combi is your in-memory toolbox for combinatorial enumeration
// and sequence synthesis — Cartesian powers, permutations, combinations,
// and the small generator/window primitives that go with them.
//
// 🚀 What is combi?
//
//	A deterministic, zero-surprise library that brings together:
//		• Cartesian powers: every length-p tuple over a domain, in a fixed order
//		• Permutations: tuples with pairwise-distinct elements
//		• Combinations: canonical ascending tuples, with or without replacement
//		• Generators: build sequences from a callable, plain or index-aware
//		• Windows: sliding fixed-length infixes over any slice
//		• Padding & replication: FillLeft/FillRight, Repeat, Replicate
//
// ✨ Why choose combi?
//
//   - Reproducible – enumeration order is fixed and documented, never map-random
//   - Predictable memory – filtered variants prune during production, O(output) transient space
//   - Pure Go – no cgo, safe for concurrent use on disjoint inputs
//   - Generic – works over any element type, any Sequence capability
//
// Under the hood, everything is organized under three subpackages:
//
//	combinat/  — index-tuple enumerator, filter predicates & the facade ops
//	container/ — Sequence and Appender capability interfaces + slice adapters
//	seqgen/    — Generate, Repeat, Replicate, FillLeft/Right and Infixes
//
// Quick taste:
//
//	combinat.Product(2, []byte("ABCD"))       // AA AB AC AD BA ... DD   (16 tuples)
//	combinat.Permutations(2, []byte("ABCD"))  // AB AC AD BA ... DC      (12 tuples)
//	combinat.Combinations(2, []byte("ABCD"))  // AB AC AD BC BD CD       (6 tuples)
//
// Mind the growth: Product(p, xs) materializes len(xs)^p tuples. Use the
// combinat count helpers to check feasibility before enumerating.
//
//	go get github.com/katalvlaran/combi
package combi
