// Copyright 2026 Strided ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/strided-ml/strided/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType is the runtime element-type tag of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device tags where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Sentinel errors surfaced by the core. Match with errors.Is.
var (
	ErrAllocation       = tensor.ErrAllocation
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrInvalidArgument  = tensor.ErrInvalidArgument
	ErrOutOfRange       = tensor.ErrOutOfRange
	ErrInvalidRange     = tensor.ErrInvalidRange
	ErrCapacityExceeded = tensor.ErrCapacityExceeded
)

// Creation functions

// NewRaw creates a contiguous raw tensor on the default heap allocator.
//
// Example:
//
//	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// NewRawWith creates a contiguous raw tensor backed by the given allocator.
func NewRawWith(a Allocator, shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRawWith(a, shape, dtype, device)
}

// Empty creates a zero-length one-dimensional tensor with no storage bytes,
// ready to be grown with Resize, Reserve or Extend.
func Empty(dtype DataType, device Device) (*RawTensor, error) {
	return tensor.Empty(dtype, device)
}
