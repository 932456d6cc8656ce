// Copyright 2026 Strided ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the Strided storage and layout core: raw tensors,
// their reference-counted Storage, pluggable Allocators, and non-owning
// Views over contiguous element runs.
//
// # Overview
//
// This package owns memory and layout only. It decides when a logical shape
// change can be satisfied in place and when it needs a fresh allocation, and
// it preserves data across those reallocations. Backend dispatch and compute
// kernels live in the layers above and consume this API.
//
// # Basic Usage
//
//	import "github.com/strided-ml/strided/tensor"
//
//	func main() {
//	    raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	    raw.AsFloat32()[0] = 1.0
//
//	    // Append two rows, over-allocating 50% to amortize future growth.
//	    _ = raw.Extend(2, 50)
//	}
//
// # Memory Model
//
// Storage is shared: Clone returns an aliasing tensor over the same bytes,
// tracked with an atomic reference count. The originating Allocator's release
// routine runs exactly once, when the last reference drops. Mutating
// operations (Resize, Reserve, Extend, CopyFrom) either complete fully or
// leave the tensor untouched; none of them retries internally.
//
// Concurrent Clone/Release across goroutines is safe. Concurrent mutation of
// tensors sharing one Storage is not, and must be serialized by the caller.
//
// # Supported Data Types
//
// The element tag covers float32, float64, int32, int64, uint8 and bool.
// The core only ever consults its byte width.
package tensor
