package tensor

import "unsafe"

// View is a non-owning, read-only reference to a contiguous run of elements.
// It is a small value meant to be passed by value; slicing and sub-ranging
// never copy the underlying elements.
//
// A View built from a Go slice keeps the backing array live, so it is always
// safe to hold. ViewFromPtr is the one exception: it references externally
// owned memory and must not outlive that memory.
type View[T comparable] struct {
	data []T
}

// NewView wraps an owned contiguous sequence. The zero View is empty.
func NewView[T comparable](s []T) View[T] {
	return View[T]{data: s}
}

// ViewOf wraps a single element.
func ViewOf[T comparable](v T) View[T] {
	return View[T]{data: []T{v}}
}

// ViewFromPtr wraps a pointer + length pair over externally owned memory.
// The caller guarantees the memory holds n elements of T and stays live for
// the lifetime of the View.
func ViewFromPtr[T comparable](p unsafe.Pointer, n int) View[T] {
	if n == 0 || p == nil {
		return View[T]{}
	}
	return View[T]{data: unsafe.Slice((*T)(p), n)}
}

// Size returns the number of referenced elements.
func (v View[T]) Size() int { return len(v.data) }

// Empty reports whether the view references no elements.
func (v View[T]) Empty() bool { return len(v.data) == 0 }

// Data returns the referenced run without copying.
func (v View[T]) Data() []T { return v.data }

// Front returns the first element, or ErrOutOfRange when empty.
func (v View[T]) Front() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, ErrOutOfRange
	}
	return v.data[0], nil
}

// Back returns the last element, or ErrOutOfRange when empty.
func (v View[T]) Back() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, ErrOutOfRange
	}
	return v.data[len(v.data)-1], nil
}

// Get returns the i-th element without an explicit range check.
func (v View[T]) Get(i int) T { return v.data[i] }

// At returns the i-th element, or ErrOutOfRange when i is outside the view.
func (v View[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, ErrOutOfRange
	}
	return v.data[i], nil
}

// Slice returns a sub-view of count elements starting at start, or
// ErrInvalidRange when the sub-range does not fit.
func (v View[T]) Slice(start, count int) (View[T], error) {
	if start < 0 || count < 0 || start+count > len(v.data) {
		return View[T]{}, ErrInvalidRange
	}
	return View[T]{data: v.data[start : start+count]}, nil
}

// Equals reports element-wise equality against another view of equal length.
func (v View[T]) Equals(other View[T]) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Vec returns an owned copy of the referenced elements.
func (v View[T]) Vec() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}
