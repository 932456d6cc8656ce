package tensor

import (
	"fmt"
	"sync/atomic"
)

// Storage is an owned, reference-counted byte buffer shared by zero or more
// tensors. The refcount is atomic so aliasing tensors can be retained and
// released from different goroutines; access to the bytes themselves is not
// locked — mutation follows a single-writer-per-Storage contract enforced by
// the caller.
type Storage struct {
	block    Block
	capacity int
	alloc    Allocator
	refCount atomic.Int32
}

// NewStorage allocates capacity bytes from a and returns a Storage with a
// reference count of one. The allocator is remembered so later growth uses
// the same source.
func NewStorage(a Allocator, byteCount int) (*Storage, error) {
	if a == nil {
		a = defaultAllocator
	}
	block, err := a.Allocate(byteCount)
	if err != nil {
		return nil, fmt.Errorf("storage of %d bytes: %w", byteCount, err)
	}
	s := &Storage{
		block:    block,
		capacity: byteCount,
		alloc:    a,
	}
	s.refCount.Store(1)
	return s, nil
}

// Data returns the raw bytes. Valid until the last Release.
func (s *Storage) Data() []byte { return s.block.Data }

// Capacity returns the tracked capacity in bytes.
func (s *Storage) Capacity() int { return s.capacity }

// Allocator returns the allocator that produced this storage.
func (s *Storage) Allocator() Allocator { return s.alloc }

// Retain increments the shared reference count.
func (s *Storage) Retain() {
	s.refCount.Add(1)
}

// Release decrements the reference count. When it reaches zero the block's
// deleter runs exactly once and the bytes become unreachable.
func (s *Storage) Release() {
	if s.refCount.Add(-1) == 0 {
		s.block.Release()
		s.capacity = 0
	}
}

// Unique reports whether this is the only live reference.
func (s *Storage) Unique() bool {
	return s.refCount.Load() == 1
}
