package catalog

import (
	"context"
	"time"

	"webstore-portal/models"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedItemClient remembers successful lookups for a bounded time.
// Failed lookups are never cached.
type CachedItemClient struct {
	next  ItemClient
	cache *expirable.LRU[int64, models.Item]
}

// NewCachedItemClient wraps next with an LRU of the given size and ttl.
// A size of zero or less disables caching and returns next unchanged.
func NewCachedItemClient(next ItemClient, size int, ttl time.Duration) ItemClient {
	if size <= 0 {
		return next
	}
	return &CachedItemClient{
		next:  next,
		cache: expirable.NewLRU[int64, models.Item](size, nil, ttl),
	}
}

func (c *CachedItemClient) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	if item, ok := c.cache.Get(itemID); ok {
		return &item, nil
	}

	item, err := c.next.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	c.cache.Add(itemID, *item)
	return item, nil
}

// Len returns the number of cached items.
func (c *CachedItemClient) Len() int {
	return c.cache.Len()
}
