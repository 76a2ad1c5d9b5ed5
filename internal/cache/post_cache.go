// Package cache keeps a short-lived copy of each owner's post list.
package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"microblog/internal/models"
)

const (
	DefaultSize = 1000
	DefaultTTL  = 300 * time.Second
)

// PostCache maps an owner key (the owner's email) to that owner's posts.
// Entries expire after the TTL and the least recently used entry is evicted
// once the capacity is reached.
//
// Every invalidation advances an epoch. A list read from the store before an
// invalidation is refused by PutAt afterwards, so a slow fill can never
// overwrite the eviction it raced with.
type PostCache struct {
	lru *expirable.LRU[string, []models.Post]

	mu    sync.Mutex
	epoch uint64
}

func NewPostCache(size int, ttl time.Duration) *PostCache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PostCache{
		lru: expirable.NewLRU[string, []models.Post](size, nil, ttl),
	}
}

// Get returns a copy of the cached posts, or false on a miss or expiry.
func (c *PostCache) Get(owner string) ([]models.Post, bool) {
	posts, ok := c.lru.Get(owner)
	if !ok {
		return nil, false
	}
	return clonePosts(posts), true
}

// Put stores posts unconditionally.
func (c *PostCache) Put(owner string, posts []models.Post) {
	c.lru.Add(owner, clonePosts(posts))
}

// Snapshot returns the current invalidation epoch. Take it before reading
// from the store and hand it to PutAt.
func (c *PostCache) Snapshot() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

// PutAt stores posts only if no invalidation happened since snapshot was
// taken. It reports whether the value was stored.
func (c *PostCache) PutAt(owner string, posts []models.Post, snapshot uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != snapshot {
		return false
	}
	c.lru.Add(owner, clonePosts(posts))
	return true
}

// Invalidate evicts a single owner's entry.
func (c *PostCache) Invalidate(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.lru.Remove(owner)
}

// InvalidateAll evicts every entry regardless of owner.
func (c *PostCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.lru.Purge()
}

func (c *PostCache) Len() int {
	return c.lru.Len()
}

func clonePosts(posts []models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	return out
}
