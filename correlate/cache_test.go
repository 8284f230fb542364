package correlate_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/discordkit/correlate"
)

func TestNewRejectsInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		_, err := correlate.New[int](capacity)
		assert.ErrorIs(t, err, correlate.ErrInvalidCapacity, "capacity %d", capacity)
	}
}

func TestAddAndGet(t *testing.T) {
	c, err := correlate.New[string](4)
	require.NoError(t, err)

	c.Add("a", "alpha")
	c.Add("b", "beta")

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", v)

	assert.True(t, c.Contains("b"))
	assert.False(t, c.Contains("c"))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 4, c.Capacity())
}

func TestLenNeverExceedsCapacity(t *testing.T) {
	c, err := correlate.New[int](3)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		c.Add(fmt.Sprintf("key-%d", i), i)
		assert.LessOrEqual(t, c.Len(), 3)
	}

	// Only the newest three survive.
	for i := 0; i < 7; i++ {
		assert.False(t, c.Contains(fmt.Sprintf("key-%d", i)))
	}
	for i := 7; i < 10; i++ {
		assert.True(t, c.Contains(fmt.Sprintf("key-%d", i)))
	}
}

func TestEvictsOldestFirst(t *testing.T) {
	c, err := correlate.New[int](2)
	require.NoError(t, err)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	assert.False(t, c.Contains("a"))
	assert.True(t, c.Contains("b"))
	assert.True(t, c.Contains("c"))
}

func TestReaddKeepsEvictionPosition(t *testing.T) {
	c, err := correlate.New[int](2)
	require.NoError(t, err)

	c.Add("a", 1)
	c.Add("b", 2)

	// Overwrites the value but must not refresh a's position in the
	// eviction order.
	c.Add("a", 10)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	// The next insert still evicts a, the oldest entry.
	c.Add("c", 3)
	assert.False(t, c.Contains("a"))
	assert.True(t, c.Contains("b"))
	assert.True(t, c.Contains("c"))
}

func TestEmptyKeyIgnored(t *testing.T) {
	c, err := correlate.New[int](2)
	require.NoError(t, err)

	c.Add("", 1)
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Contains(""))

	// An ignored empty key must not consume a ring slot either.
	c.Add("a", 1)
	c.Add("b", 2)
	assert.True(t, c.Contains("a"))
	assert.True(t, c.Contains("b"))
}

func TestFindScansInsertionOrder(t *testing.T) {
	c, err := correlate.New[int](4)
	require.NoError(t, err)

	c.Add("ab", 1)
	c.Add("a", 2)

	// Both keys prefix "abc"; the older registration wins.
	v, ok := c.Find(func(key string) bool {
		return strings.HasPrefix("abc", key)
	})
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestFindMiss(t *testing.T) {
	c, err := correlate.New[int](2)
	require.NoError(t, err)
	c.Add("a", 1)

	_, ok := c.Find(func(key string) bool { return key == "nope" })
	assert.False(t, ok)
}

func TestConcurrentAddAndFind(t *testing.T) {
	c, err := correlate.New[int](16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("g%d-%d", g, i)
				c.Add(key, i)
				c.Find(func(k string) bool { return strings.HasPrefix(k, "g") })
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), c.Capacity())
}
