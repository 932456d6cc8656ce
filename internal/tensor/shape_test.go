package tensor

import (
	"testing"
)

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{4, 1, 5}, 20},
		{Shape{2, 0, 3}, 0},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 0, 3}).Validate(); err != nil {
		t.Errorf("zero extents should be valid, got %v", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("negative extent should be rejected")
	}
}

func TestContiguousStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		elemSize int
		want     []int
	}{
		{Shape{2, 3}, 4, []int{12, 4}},
		{Shape{4, 1, 5}, 8, []int{40, 40, 8}},
		{Shape{7}, 1, []int{1}},
		{Shape{}, 4, []int{}},
	}
	for _, tt := range tests {
		got := tt.shape.ContiguousStrides(tt.elemSize)
		if len(got) != len(tt.want) {
			t.Fatalf("ContiguousStrides(%v, %d) = %v, want %v", tt.shape, tt.elemSize, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ContiguousStrides(%v, %d) = %v, want %v", tt.shape, tt.elemSize, got, tt.want)
				break
			}
		}
	}
}

// TestRowMajorRoundTrip walks every valid multi-index of a default layout and
// checks that the flat byte offset from the stride sum matches the row-major
// formula and stays inside capacity.
func TestRowMajorRoundTrip(t *testing.T) {
	shapes := []Shape{{2, 3}, {4, 1, 5}, {1}, {3, 3}}
	const elemSize = 4

	for _, shape := range shapes {
		strides := shape.ContiguousStrides(elemSize)
		capacity := contiguousBytes(shape, elemSize)

		idx := make([]int, len(shape))
		for flat := 0; flat < shape.NumElements(); flat++ {
			// Decompose flat in row-major order.
			rem := flat
			for k := len(shape) - 1; k >= 0; k-- {
				idx[k] = rem % shape[k]
				rem /= shape[k]
			}

			byteOffset := 0
			for k := range idx {
				byteOffset += idx[k] * strides[k]
			}

			if want := flat * elemSize; byteOffset != want {
				t.Fatalf("shape %v index %v: offset %d, want %d", shape, idx, byteOffset, want)
			}
			if byteOffset < 0 || byteOffset+elemSize > capacity {
				t.Fatalf("shape %v index %v: offset %d outside capacity %d", shape, idx, byteOffset, capacity)
			}
		}
	}
}

func TestMaxByteExtent(t *testing.T) {
	tests := []struct {
		shape    Shape
		stride   []int
		elemSize int
		want     int
	}{
		{Shape{2, 3}, []int{12, 4}, 4, 24},
		{Shape{3, 3}, []int{12, 4}, 4, 36},
		{Shape{}, []int{}, 8, 8}, // scalar occupies one element
		{Shape{0, 3}, []int{12, 4}, 4, 0},
	}
	for _, tt := range tests {
		if got := maxByteExtent(tt.shape, tt.stride, tt.elemSize); got != tt.want {
			t.Errorf("maxByteExtent(%v, %v, %d) = %d, want %d", tt.shape, tt.stride, tt.elemSize, got, tt.want)
		}
	}
}
