package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocator(t *testing.T) {
	var a HeapAllocator

	block, err := a.Allocate(128)
	require.NoError(t, err)
	assert.Len(t, block.Data, 128)

	zero, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Empty(t, zero.Data)

	_, err = a.Allocate(-1)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestBlockReleaseRunsOnce(t *testing.T) {
	calls := 0
	block := Block{Data: make([]byte, 8), free: func() { calls++ }}

	block.Release()
	block.Release()

	assert.Equal(t, 1, calls)
	assert.Nil(t, block.Data)
}

func TestPoolClass(t *testing.T) {
	tests := []struct {
		byteCount int
		class     int
		pooled    bool
	}{
		{0, 0, false},
		{1, 0, true},
		{64, 0, true},
		{65, 1, true},
		{128, 1, true},
		{1 << 30, 24, true},
		{1<<30 + 1, 0, false},
	}
	for _, tt := range tests {
		class, pooled := poolClass(tt.byteCount)
		assert.Equal(t, tt.pooled, pooled, "byteCount %d", tt.byteCount)
		if pooled {
			assert.Equal(t, tt.class, class, "byteCount %d", tt.byteCount)
		}
	}
}

func TestPoolAllocatorReuse(t *testing.T) {
	p := NewPoolAllocator()

	block, err := p.Allocate(100)
	require.NoError(t, err)
	require.Len(t, block.Data, 100)

	for i := range block.Data {
		block.Data[i] = 0xAB
	}
	block.Release()

	// Same size class; a reused buffer must come back zeroed.
	again, err := p.Allocate(120)
	require.NoError(t, err)
	require.Len(t, again.Data, 120)
	for i, b := range again.Data {
		require.Zero(t, b, "stale byte at %d", i)
	}

	_, err = p.Allocate(-5)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestCountingAllocatorAccounting(t *testing.T) {
	c := &CountingAllocator{Inner: HeapAllocator{}}

	a, err := c.Allocate(100)
	require.NoError(t, err)
	b, err := c.Allocate(50)
	require.NoError(t, err)

	assert.Equal(t, int64(2), c.LiveBlocks())
	assert.Equal(t, int64(150), c.LiveBytes())
	assert.Equal(t, int64(2), c.TotalAllocations())

	a.Release()
	assert.Equal(t, int64(1), c.LiveBlocks())
	assert.Equal(t, int64(50), c.LiveBytes())

	b.Release()
	b.Release() // deleter must not double-count
	assert.Equal(t, int64(0), c.LiveBlocks())
	assert.Equal(t, int64(0), c.LiveBytes())
	assert.Equal(t, int64(2), c.TotalAllocations())
}

func TestCountingAllocatorLimit(t *testing.T) {
	c := &CountingAllocator{Limit: 64}

	block, err := c.Allocate(48)
	require.NoError(t, err)

	_, err = c.Allocate(32)
	assert.ErrorIs(t, err, ErrAllocation)

	block.Release()
	_, err = c.Allocate(32)
	assert.NoError(t, err)
}
