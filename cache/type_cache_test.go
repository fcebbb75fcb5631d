package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeCacheGetSet(t *testing.T) {
	c, err := NewTypeCache(4)
	require.NoError(t, err)

	_, ok := c.Get("mood")
	assert.False(t, ok)

	c.Set("mood", 16390)
	oid, ok := c.Get("mood")
	assert.True(t, ok)
	assert.Equal(t, uint32(16390), oid)
	assert.Equal(t, 1, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestTypeCacheEvictsOldest(t *testing.T) {
	c, err := NewTypeCache(2)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestTypeCacheRejectsBadSize(t *testing.T) {
	c, err := NewTypeCache(0)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestTypeCacheConcurrent(t *testing.T) {
	c, err := NewTypeCache(128)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("t%d", i)
			c.Set(name, uint32(i))
			_, _ = c.Get(name)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, c.Len())
}
