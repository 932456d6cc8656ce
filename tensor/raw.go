// Copyright 2026 Strided ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/strided-ml/strided/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape, stride and type information via Shape(), Strides(), DType(), Device()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Shared, reference-counted Storage via Clone() and Release()
//   - In-place growth via Resize(), Reserve(), Extend() and CopyFrom()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()  // Zero-copy typed access
//	clone := raw.Clone()     // Shares storage via reference counting
type RawTensor = tensor.RawTensor

// Storage is the owned, reference-counted byte buffer backing one or more
// raw tensors.
type Storage = tensor.Storage

// NewStorage allocates byteCount bytes from a with a reference count of one.
func NewStorage(a Allocator, byteCount int) (*Storage, error) {
	return tensor.NewStorage(a, byteCount)
}
