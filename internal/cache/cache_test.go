package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(time.Minute)

	data := []byte(`{"connections":[]}`)
	key := c.generateKey("/analyze\n{}")
	c.Set(key, data)

	got, found := c.Get(key)
	assert.True(t, found)
	assert.Equal(t, data, got)

	_, found = c.Get(c.generateKey("other"))
	assert.False(t, found)
}

func TestCacheExpiration(t *testing.T) {
	c := NewCache(10 * time.Millisecond)

	c.Set("key", []byte("value"))
	_, found := c.Get("key")
	assert.True(t, found)

	time.Sleep(20 * time.Millisecond)

	_, found = c.Get("key")
	assert.False(t, found, "expired items are not served")
}

func TestCacheKeyIsDeterministic(t *testing.T) {
	c := NewCache(time.Minute)

	assert.Equal(t, c.generateKey("same input"), c.generateKey("same input"))
	assert.NotEqual(t, c.generateKey("/analyze\n{}"), c.generateKey("/analyze/structure\n{}"),
		"different paths with the same body must not collide")
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	assert.Equal(t, 2, c.Size())

	c.Delete("a")
	assert.Equal(t, 1, c.Size())
	_, found := c.Get("a")
	assert.False(t, found)

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCacheStats(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", []byte("1"))

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_items"])
	assert.Equal(t, 0, stats["expired_items"])
	assert.Equal(t, 1, stats["active_items"])
	assert.Equal(t, 60.0, stats["ttl_seconds"])
}
