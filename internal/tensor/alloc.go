package tensor

import (
	"fmt"
	"math/bits"
	"sync"
	"sync/atomic"
)

// Block is an owned memory region paired with the exact routine that must
// reclaim it. Different allocators require different release calls, so the
// deleter travels with the bytes.
type Block struct {
	Data []byte
	free func()
}

// Release runs the block's deleter exactly once. Further calls are no-ops.
// The bytes must not be touched after Release.
func (b *Block) Release() {
	if b.free != nil {
		b.free()
		b.free = nil
	}
	b.Data = nil
}

// Allocator turns a byte count into an owned Block. Implementations may keep
// internal state (pools, counters) scoped to the instance. A failed request
// returns ErrAllocation and never a partially usable block.
type Allocator interface {
	Allocate(byteCount int) (Block, error)
}

// HeapAllocator delegates to the Go heap. Release is a no-op; the garbage
// collector reclaims the bytes once the last reference drops.
type HeapAllocator struct{}

// Allocate returns a zeroed heap block of byteCount bytes.
func (HeapAllocator) Allocate(byteCount int) (Block, error) {
	if byteCount < 0 {
		return Block{}, fmt.Errorf("%w: negative byte count %d", ErrAllocation, byteCount)
	}
	return Block{Data: make([]byte, byteCount)}, nil
}

// defaultAllocator backs Storage creation when no allocator is injected.
var defaultAllocator Allocator = HeapAllocator{}

// Pool size classes run from 64 B to 1 GiB.
const (
	poolMinShift = 6
	poolMaxShift = 30
)

// PoolAllocator reuses buffers through power-of-two size classes. Released
// blocks return to their class pool; requests above the largest class fall
// through to the heap. State is per-instance, not process-global.
type PoolAllocator struct {
	pools [poolMaxShift - poolMinShift + 1]sync.Pool
}

// NewPoolAllocator returns an empty pool.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{}
}

// Allocate returns a block of exactly byteCount bytes, backed by a pooled
// buffer of the next power-of-two class when one applies.
func (p *PoolAllocator) Allocate(byteCount int) (Block, error) {
	if byteCount < 0 {
		return Block{}, fmt.Errorf("%w: negative byte count %d", ErrAllocation, byteCount)
	}
	class, ok := poolClass(byteCount)
	if !ok {
		return Block{Data: make([]byte, byteCount)}, nil
	}
	var buf []byte
	if got := p.pools[class].Get(); got != nil {
		buf = got.([]byte)
		clear(buf)
	} else {
		buf = make([]byte, 1<<(class+poolMinShift))
	}
	pool := &p.pools[class]
	return Block{
		Data: buf[:byteCount:byteCount],
		free: func() { pool.Put(buf) },
	}, nil
}

// poolClass maps a byte count to its size-class index. Requests above the
// largest class are not pooled.
func poolClass(byteCount int) (int, bool) {
	if byteCount == 0 {
		return 0, false
	}
	shift := bits.Len(uint(byteCount - 1))
	if shift < poolMinShift {
		shift = poolMinShift
	}
	if shift > poolMaxShift {
		return 0, false
	}
	return shift - poolMinShift, true
}

// CountingAllocator decorates another Allocator with live/total accounting
// and an optional byte limit. With Limit > 0, requests that would push live
// bytes past the limit fail with ErrAllocation before touching the inner
// allocator, which makes it a convenient failure injector in tests.
type CountingAllocator struct {
	Inner Allocator
	Limit int

	liveBlocks atomic.Int64
	liveBytes  atomic.Int64
	total      atomic.Int64
}

// Allocate accounts for the request and delegates to Inner.
func (c *CountingAllocator) Allocate(byteCount int) (Block, error) {
	if c.Limit > 0 && c.liveBytes.Load()+int64(byteCount) > int64(c.Limit) {
		return Block{}, fmt.Errorf("%w: %d bytes over limit %d", ErrAllocation, byteCount, c.Limit)
	}
	inner := c.Inner
	if inner == nil {
		inner = defaultAllocator
	}
	block, err := inner.Allocate(byteCount)
	if err != nil {
		return Block{}, err
	}
	c.liveBlocks.Add(1)
	c.liveBytes.Add(int64(byteCount))
	c.total.Add(1)

	innerFree := block.free
	block.free = func() {
		c.liveBlocks.Add(-1)
		c.liveBytes.Add(int64(-byteCount))
		if innerFree != nil {
			innerFree()
		}
	}
	return block, nil
}

// LiveBlocks returns the number of blocks allocated and not yet released.
func (c *CountingAllocator) LiveBlocks() int64 { return c.liveBlocks.Load() }

// LiveBytes returns the byte total of live blocks.
func (c *CountingAllocator) LiveBytes() int64 { return c.liveBytes.Load() }

// TotalAllocations returns the number of successful Allocate calls.
func (c *CountingAllocator) TotalAllocations() int64 { return c.total.Load() }
