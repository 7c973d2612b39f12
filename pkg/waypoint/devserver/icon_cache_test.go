package devserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewIconCacheWithSize(2)
	c.Set(32, []byte("a"))
	c.Set(64, []byte("b"))

	// Touch 32 so 64 becomes the oldest.
	_, ok := c.Get(32)
	assert.True(t, ok)

	c.Set(128, []byte("c"))
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get(64)
	assert.False(t, ok)
	icon, ok := c.Get(32)
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), icon)
}

func TestIconCache_Update(t *testing.T) {
	c := NewIconCacheWithSize(0)
	c.Set(32, []byte("a"))
	c.Set(32, []byte("b"))
	assert.Equal(t, 1, c.Len())

	icon, _ := c.Get(32)
	assert.Equal(t, []byte("b"), icon)

	c.Set(64, []byte("c"))
	assert.Equal(t, 1, c.Len())
}
