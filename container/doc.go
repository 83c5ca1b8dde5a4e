// Package container defines the small capability interfaces the combi
// subpackages consume and produce sequences through.
//
// 🚀 What is container?
//
//	Two tiny contracts, plus slice adapters for each:
//	  • Sequence[T] — read-only, sized, random-access input
//	  • Appender[T] — incremental, write-only output building
//
// ✨ Why interfaces instead of plain slices?
//
//   - Inputs that are not slices (ropes, gap buffers, generated data) can feed
//     the enumerators without being copied into one first
//   - Outputs can be streamed into any growing structure, not just a []T
//   - Slices stay the happy path: Slice[T] and SliceAppender[T] adapt them
//     with zero ceremony
//
// Every exported operation in combinat and seqgen that accepts a Sequence or
// an Appender also has a plain-slice form; reach for these interfaces only
// when a slice genuinely is not what you have.
package container
