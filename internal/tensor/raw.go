package tensor

import (
	"fmt"
	"math"
	"unsafe"
)

// RawTensor is the low-level tensor: a shared Storage reference plus the
// layout metadata (element tag, byte offset, shape, byte strides) that gives
// the bytes their multidimensional meaning. It owns all grow/reallocate
// decisions; Storage itself never resizes.
//
// A RawTensor is not safe for concurrent mutation. Aliasing tensors over one
// Storage may be cloned and released from different goroutines, but writers
// must be externally serialized.
type RawTensor struct {
	storage *Storage
	dtype   DataType
	device  Device
	offset  int   // byte offset into storage
	shape   Shape // per-dimension extents
	stride  []int // per-dimension byte steps, same length as shape
}

// NewRaw creates a contiguous tensor with the given shape on the default
// heap allocator. Memory is allocated zeroed.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return NewRawWith(defaultAllocator, shape, dtype, device)
}

// NewRawWith creates a contiguous tensor backed by the given allocator.
func NewRawWith(a Allocator, shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	storage, err := NewStorage(a, contiguousBytes(shape, dtype.Size()))
	if err != nil {
		return nil, err
	}
	return &RawTensor{
		storage: storage,
		dtype:   dtype,
		device:  device,
		shape:   shape.Clone(),
		stride:  shape.ContiguousStrides(dtype.Size()),
	}, nil
}

// Empty creates a zero-length one-dimensional tensor with no storage bytes,
// ready to be grown with Resize, Reserve or Extend.
func Empty(dtype DataType, device Device) (*RawTensor, error) {
	return NewRaw(Shape{0}, dtype, device)
}

// Shape returns the tensor's extents.
func (r *RawTensor) Shape() Shape { return r.shape }

// Strides returns the tensor's byte strides.
func (r *RawTensor) Strides() []int { return r.stride }

// DType returns the element-type tag.
func (r *RawTensor) DType() DataType { return r.dtype }

// Device returns the device tag.
func (r *RawTensor) Device() Device { return r.device }

// Offset returns the byte offset of the first element within Storage.
func (r *RawTensor) Offset() int { return r.offset }

// Storage returns the shared storage backing this tensor.
func (r *RawTensor) Storage() *Storage { return r.storage }

// Capacity returns the backing storage capacity in bytes.
func (r *RawTensor) Capacity() int { return r.storage.Capacity() }

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int { return r.shape.NumElements() }

// ByteSize returns the logical byte extent of the elements laid out under
// the current shape, assuming a dense packing.
func (r *RawTensor) ByteSize() int { return r.NumElements() * r.dtype.Size() }

// logicalBytes is the reachable byte extent including the offset, clamped to
// capacity. This is the span a data-preserving reallocation must carry over.
func (r *RawTensor) logicalBytes() int {
	n := r.offset + maxByteExtent(r.shape, r.stride, r.dtype.Size())
	if c := r.storage.Capacity(); n > c {
		n = c
	}
	return n
}

// Data returns the raw bytes starting at the tensor's offset.
// WARNING: direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.storage.Data()[r.offset:]
}

// AsFloat32 reinterprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	return rawSlice[float32](r)
}

// AsFloat64 reinterprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	return rawSlice[float64](r)
}

// AsInt32 reinterprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	return rawSlice[int32](r)
}

// AsInt64 reinterprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	return rawSlice[int64](r)
}

// AsUint8 reinterprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", r.dtype))
	}
	return r.Data()[:r.NumElements()]
}

// AsBool reinterprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	return rawSlice[bool](r)
}

// rawSlice reinterprets the tensor's bytes at its offset as a typed slice.
func rawSlice[T any](r *RawTensor) []T {
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.Data()
	//nolint:gosec // zero-copy reinterpretation, bounds established by NumElements
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}

// Clone creates an aliasing tensor sharing the same Storage. The refcount is
// bumped; the layout metadata is copied so the alias can be reshaped
// independently.
func (r *RawTensor) Clone() *RawTensor {
	r.storage.Retain()
	return &RawTensor{
		storage: r.storage,
		dtype:   r.dtype,
		device:  r.device,
		offset:  r.offset,
		shape:   r.shape.Clone(),
		stride:  append([]int(nil), r.stride...),
	}
}

// Release drops this tensor's reference to its Storage. The storage's
// deleter runs once the last alias releases.
func (r *RawTensor) Release() {
	r.storage.Release()
}

// IsUnique reports whether this tensor is the only reference to its Storage.
func (r *RawTensor) IsUnique() bool {
	return r.storage.Unique()
}

// Resize installs a new shape and stride layout, growing Storage when the
// layout does not fit. Growth allocates a fresh Storage of exactly the
// required capacity from the same allocator, copies data over when keepData
// is set, and resets the offset to zero. When the layout already fits the
// current Storage is kept; with keepData=false the bytes outside the new
// layout are stale, not zeroed — callers must not read them as fresh.
//
// On any failure the tensor is left exactly as it was.
func (r *RawTensor) Resize(size, stride View[int], keepData bool) error {
	if size.Size() != stride.Size() {
		return fmt.Errorf("%w: %d extents vs %d strides", ErrShapeMismatch, size.Size(), stride.Size())
	}
	newShape := Shape(size.Vec())
	if err := newShape.Validate(); err != nil {
		return err
	}
	newStride := stride.Vec()

	required := r.offset + maxByteExtent(newShape, newStride, r.dtype.Size())
	if required > r.storage.Capacity() {
		storage, err := NewStorage(r.storage.Allocator(), required)
		if err != nil {
			return err
		}
		if keepData {
			n := r.logicalBytes()
			if n > required {
				n = required
			}
			copy(storage.Data()[:n], r.storage.Data()[:n])
		}
		r.storage.Release()
		r.storage = storage
		r.offset = 0
	}
	r.shape = newShape
	r.stride = newStride
	return nil
}

// Reserve ensures Storage can hold size laid out contiguously from the
// current offset, without touching the logical shape or strides. Existing
// data always survives; when capacity already suffices this is a no-op and
// the Storage identity is preserved.
func (r *RawTensor) Reserve(size View[int]) error {
	newShape := Shape(size.Vec())
	if err := newShape.Validate(); err != nil {
		return err
	}
	required := r.offset + contiguousBytes(newShape, r.dtype.Size())
	if required <= r.storage.Capacity() {
		return nil
	}
	storage, err := NewStorage(r.storage.Allocator(), required)
	if err != nil {
		return err
	}
	copy(storage.Data(), r.storage.Data())
	r.storage.Release()
	r.storage = storage
	return nil
}

// Extend appends num elements along the outermost dimension. When the grown
// layout no longer fits, capacity is over-allocated by growthPct percent of
// the current capacity (amortized growth), never below what the new extent
// requires. Data always survives the reallocation.
func (r *RawTensor) Extend(num int, growthPct float64) error {
	if num < 0 {
		return fmt.Errorf("%w: negative element count %d", ErrInvalidArgument, num)
	}
	if growthPct < 0 {
		return fmt.Errorf("%w: negative growth percentage %v", ErrInvalidArgument, growthPct)
	}
	if len(r.shape) == 0 {
		return fmt.Errorf("%w: extend requires at least one dimension", ErrInvalidArgument)
	}

	newShape := r.shape.Clone()
	newShape[0] += num
	required := r.offset + maxByteExtent(newShape, r.stride, r.dtype.Size())
	if required <= r.storage.Capacity() {
		r.shape = newShape
		return nil
	}

	grown := int(math.Ceil(float64(r.storage.Capacity()) * (1 + growthPct/100)))
	newCapacity := required
	if grown > newCapacity {
		newCapacity = grown
	}
	storage, err := NewStorage(r.storage.Allocator(), newCapacity)
	if err != nil {
		return err
	}
	copy(storage.Data(), r.storage.Data())
	r.storage.Release()
	r.storage = storage
	r.shape = newShape
	return nil
}

// CopyFrom bulk-copies sizeBytes from an external buffer into Storage at the
// tensor's offset and installs the given element tag. It never grows
// Storage; callers Reserve or Resize first.
func (r *RawTensor) CopyFrom(dtype DataType, src unsafe.Pointer, sizeBytes int) error {
	if sizeBytes < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidArgument, sizeBytes)
	}
	if src == nil && sizeBytes > 0 {
		return fmt.Errorf("%w: nil source with %d bytes", ErrInvalidArgument, sizeBytes)
	}
	if r.offset+sizeBytes > r.storage.Capacity() {
		return fmt.Errorf("%w: %d bytes at offset %d into capacity %d",
			ErrCapacityExceeded, sizeBytes, r.offset, r.storage.Capacity())
	}
	r.dtype = dtype
	if sizeBytes > 0 {
		copy(r.storage.Data()[r.offset:r.offset+sizeBytes], unsafe.Slice((*byte)(src), sizeBytes))
	}
	return nil
}

// CopyFromBytes is CopyFrom over a Go byte slice.
func (r *RawTensor) CopyFromBytes(dtype DataType, src []byte) error {
	if len(src) == 0 {
		return r.CopyFrom(dtype, nil, 0)
	}
	return r.CopyFrom(dtype, unsafe.Pointer(&src[0]), len(src))
}
