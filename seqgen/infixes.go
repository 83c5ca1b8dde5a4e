package seqgen

import "errors"

// ErrWindowLength indicates Infixes was asked for windows of non-positive length.
var ErrWindowLength = errors.New("seqgen: window length must be positive")

// Infixes returns every contiguous window of the given length over xs,
// ordered by starting index: window i equals xs[i : i+length].
//
// length <= 0 returns ErrWindowLength. len(xs) < length returns an empty
// result. Each window has its own backing array — retaining one, or
// mutating xs afterwards, never affects the others.
func Infixes[T any](length int, xs []T) ([][]T, error) {
	if length <= 0 {
		return nil, ErrWindowLength
	}
	if len(xs) < length {
		return [][]T{}, nil
	}

	out := make([][]T, 0, len(xs)-length+1)
	for i := 0; i+length <= len(xs); i++ {
		window := make([]T, length)
		copy(window, xs[i:i+length])
		out = append(out, window)
	}

	return out, nil
}
