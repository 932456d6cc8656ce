package tensor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorage(t *testing.T) {
	s, err := NewStorage(HeapAllocator{}, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, s.Capacity())
	assert.Len(t, s.Data(), 64)
	assert.True(t, s.Unique())
	assert.Equal(t, HeapAllocator{}, s.Allocator())
}

func TestNewStorageDefaultAllocator(t *testing.T) {
	s, err := NewStorage(nil, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, s.Capacity())
	assert.NotNil(t, s.Allocator())
}

func TestNewStorageAllocationFailure(t *testing.T) {
	_, err := NewStorage(&CountingAllocator{Limit: 8}, 16)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestStorageReleaseRunsDeleterOnce(t *testing.T) {
	c := &CountingAllocator{}
	s, err := NewStorage(c, 32)
	require.NoError(t, err)
	require.Equal(t, int64(1), c.LiveBlocks())

	s.Retain()
	s.Release()
	assert.Equal(t, int64(1), c.LiveBlocks(), "deleter must wait for the last reference")

	s.Release()
	assert.Equal(t, int64(0), c.LiveBlocks())
	assert.Equal(t, 0, s.Capacity())
}

func TestStorageConcurrentRetainRelease(t *testing.T) {
	c := &CountingAllocator{}
	s, err := NewStorage(c, 128)
	require.NoError(t, err)

	const goroutines = 16
	const rounds = 1000

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				s.Retain()
				s.Release()
			}
		}()
	}
	wg.Wait()

	assert.True(t, s.Unique())
	assert.Equal(t, int64(1), c.LiveBlocks())
	s.Release()
	assert.Equal(t, int64(0), c.LiveBlocks())
}
