package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(capacity int, ttl time.Duration) (*LRUCache[string, string], *clock) {
	clk := &clock{t: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
	c := NewLRUCache[string, string](capacity, ttl)
	c.now = clk.now
	return c, clk
}

func TestLRUCache(t *testing.T) {
	testCases := []struct {
		name     string
		capacity int
		actions  func(t *testing.T, c *LRUCache[string, string], clk *clock)
	}{
		{
			name:     "hit within ttl",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache[string, string], clk *clock) {
				c.Set("a", "img-a")
				clk.advance(59 * time.Second)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "img-a", v)
			},
		},
		{
			name:     "miss after expiry",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache[string, string], clk *clock) {
				c.Set("a", "img-a")
				clk.advance(61 * time.Second)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Zero(t, c.Len())
			},
		},
		{
			name:     "least recently used is evicted",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache[string, string], clk *clock) {
				c.Set("a", "1")
				c.Set("b", "2")
				c.Get("a")
				c.Set("c", "3")

				_, ok := c.Get("b")
				assert.False(t, ok)
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
			},
		},
		{
			name:     "overwrite refreshes ttl",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache[string, string], clk *clock) {
				c.Set("a", "1")
				clk.advance(40 * time.Second)
				c.Set("a", "2")
				clk.advance(40 * time.Second)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "2", v)
				assert.Equal(t, 1, c.Len())
			},
		},
		{
			name:     "empty value is a hit",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache[string, string], clk *clock) {
				c.Set("a", "")
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Empty(t, v)
			},
		},
		{
			name:     "zero capacity keeps one entry",
			capacity: 0,
			actions: func(t *testing.T, c *LRUCache[string, string], clk *clock) {
				c.Set("a", "1")
				c.Set("b", "2")
				assert.Equal(t, 1, c.Len())
				_, ok := c.Get("b")
				assert.True(t, ok)
			},
		},
		{
			name:     "janitor sweep drops expired only",
			capacity: 3,
			actions: func(t *testing.T, c *LRUCache[string, string], clk *clock) {
				c.Set("old", "1")
				clk.advance(45 * time.Second)
				c.Set("new", "2")
				clk.advance(20 * time.Second)

				c.evictExpired()

				assert.Equal(t, 1, c.Len())
				_, ok := c.Get("new")
				assert.True(t, ok)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, clk := newTestCache(tc.capacity, time.Minute)
			tc.actions(t, c, clk)
		})
	}
}

func TestLRUCache_StartStopsWithContext(t *testing.T) {
	c := NewLRUCache[int, string](1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.Start(ctx))
	cancel()
}
