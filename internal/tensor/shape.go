package tensor

import "fmt"

// Shape represents the per-dimension extents of a tensor.
type Shape []int

// NumElements returns the total number of elements. A rank-0 shape is a
// scalar with one element; any zero extent yields zero elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no extent is negative. Zero extents are legal and
// describe an empty tensor.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: negative extent %d at dimension %d", ErrInvalidArgument, dim, i)
		}
	}
	return nil
}

// Equal reports whether two shapes have identical rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ContiguousStrides computes row-major byte strides for the shape: the
// rightmost dimension steps by the element width, and each dimension steps by
// the next dimension's stride times its extent.
func (s Shape) ContiguousStrides(elemSize int) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = elemSize
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// contiguousBytes returns the byte extent of shape laid out contiguously with
// the given element width.
func contiguousBytes(shape []int, elemSize int) int {
	n := elemSize
	for _, dim := range shape {
		n *= dim
	}
	return n
}

// maxByteExtent returns the number of bytes reachable from a base offset of
// zero under the given shape/stride layout: the byte offset of the largest
// valid multi-index plus one element. Zero when any extent is zero.
func maxByteExtent(shape, stride []int, elemSize int) int {
	extent := elemSize
	for i, dim := range shape {
		if dim == 0 {
			return 0
		}
		extent += (dim - 1) * stride[i]
	}
	return extent
}
