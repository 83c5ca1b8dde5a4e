package seqgen

import (
	"github.com/katalvlaran/combi/container"
)

// Generate calls f exactly amount times, strictly in call order, and
// returns the results in that order. Each call is independent — no
// memoization — so side effects of f happen once per slot, in sequence.
// amount <= 0 returns an empty result and never calls f.
func Generate[T any](f func() T, amount int) []T {
	out := container.NewSliceAppender[T](amount)
	GenerateInto(out, f, amount)

	return out.Elems
}

// GenerateInto is Generate building into any Appender capability.
func GenerateInto[T any](out container.Appender[T], f func() T, amount int) {
	for i := 0; i < amount; i++ {
		out.Append(f())
	}
}

// GenerateByIndex calls f(i) for i = 0..amount-1, strictly in increasing
// order, and returns the results in that order.
// amount <= 0 returns an empty result and never calls f.
func GenerateByIndex[T any](f func(i int) T, amount int) []T {
	out := container.NewSliceAppender[T](amount)
	GenerateByIndexInto(out, f, amount)

	return out.Elems
}

// GenerateByIndexInto is GenerateByIndex building into any Appender capability.
func GenerateByIndexInto[T any](out container.Appender[T], f func(i int) T, amount int) {
	for i := 0; i < amount; i++ {
		out.Append(f(i))
	}
}
