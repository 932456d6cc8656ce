// Copyright 2026 Strided ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/strided-ml/strided/internal/tensor"
)

// Allocator turns a byte count into an owned, self-releasing Block.
// Implementations may keep internal pools or counters scoped to the instance.
type Allocator = tensor.Allocator

// Block is an owned memory region paired with its exact release routine.
type Block = tensor.Block

// HeapAllocator delegates to the Go heap; the package default.
type HeapAllocator = tensor.HeapAllocator

// PoolAllocator reuses buffers through power-of-two size classes.
type PoolAllocator = tensor.PoolAllocator

// NewPoolAllocator returns an empty pool allocator.
func NewPoolAllocator() *PoolAllocator {
	return tensor.NewPoolAllocator()
}

// CountingAllocator decorates another Allocator with live/total accounting
// and an optional byte limit.
type CountingAllocator = tensor.CountingAllocator
