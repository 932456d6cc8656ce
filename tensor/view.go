// Copyright 2026 Strided ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"unsafe"

	"github.com/strided-ml/strided/internal/tensor"
)

// View is a non-owning, read-only reference to a contiguous run of elements.
// Pass it by value; slicing never copies.
type View[T comparable] = tensor.View[T]

// NewView wraps an owned contiguous sequence.
func NewView[T comparable](s []T) View[T] {
	return tensor.NewView(s)
}

// ViewOf wraps a single element.
func ViewOf[T comparable](v T) View[T] {
	return tensor.ViewOf(v)
}

// ViewFromPtr wraps a pointer + length pair over externally owned memory.
// The memory must hold n elements of T and outlive the View.
func ViewFromPtr[T comparable](p unsafe.Pointer, n int) View[T] {
	return tensor.ViewFromPtr[T](p, n)
}
