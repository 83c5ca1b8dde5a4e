package seqgen

// Repeat returns n concatenated copies of xs, in order; the result has
// length n*len(xs). n <= 0 returns an empty result.
func Repeat[T any](n int, xs []T) []T {
	if n <= 0 {
		return []T{}
	}

	out := make([]T, 0, n*len(xs))
	for i := 0; i < n; i++ {
		out = append(out, xs...)
	}

	return out
}

// Replicate returns a sequence of exactly n copies of x.
// n <= 0 returns an empty result.
func Replicate[T any](n int, x T) []T {
	if n <= 0 {
		return []T{}
	}

	out := make([]T, n)
	for i := range out {
		out[i] = x
	}

	return out
}

// FillLeft pads xs on the left with copies of x until the result is at
// least minSize long; xs's contents end up as the contiguous suffix.
// When xs is already long enough, xs itself is returned unchanged.
func FillLeft[T any](x T, minSize int, xs []T) []T {
	if minSize <= len(xs) {
		return xs
	}

	out := make([]T, minSize)
	pad := minSize - len(xs)
	for i := 0; i < pad; i++ {
		out[i] = x
	}
	copy(out[pad:], xs)

	return out
}

// FillRight pads xs on the right with copies of x until the result is at
// least minSize long; xs's contents end up as the contiguous prefix.
// When xs is already long enough, xs itself is returned unchanged.
func FillRight[T any](x T, minSize int, xs []T) []T {
	if minSize <= len(xs) {
		return xs
	}

	out := make([]T, minSize)
	copy(out, xs)
	for i := len(xs); i < minSize; i++ {
		out[i] = x
	}

	return out
}
