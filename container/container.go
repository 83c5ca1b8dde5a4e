package container

// Sequence is a read-only, random-access view of an ordered collection.
// Implementations must be stable for the duration of a call: Len and At
// may be invoked any number of times and must keep answering consistently.
type Sequence[T any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i, 0 <= i < Len().
	At(i int) T
}

// Slice adapts a plain []T to the Sequence capability.
type Slice[T any] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

// Appender accumulates elements of an output sequence one at a time,
// without exposing the concrete representation being built.
type Appender[T any] interface {
	// Append adds x after all previously appended elements.
	Append(x T)
}

// SliceAppender is a slice-backed Appender. The zero value is ready to use;
// NewSliceAppender pre-sizes the backing array when the final length is known.
type SliceAppender[T any] struct {
	// Elems holds everything appended so far, in append order.
	Elems []T
}

// NewSliceAppender returns a SliceAppender whose backing array has room for
// sizeHint elements. A non-positive hint is treated as zero.
func NewSliceAppender[T any](sizeHint int) *SliceAppender[T] {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &SliceAppender[T]{Elems: make([]T, 0, sizeHint)}
}

// Append adds x to the built slice.
func (a *SliceAppender[T]) Append(x T) { a.Elems = append(a.Elems, x) }
