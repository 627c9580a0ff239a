package cache

import (
	"context"
	"sync"
	"time"

	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// MemoryCache keeps the product list in process memory with a TTL.
type MemoryCache struct {
	mu       sync.RWMutex
	products []model.Product
	valid    bool
	expires  time.Time
	ttl      time.Duration
}

// NewMemoryCache creates MemoryCache with the provided entry lifetime.
// A non-positive ttl disables expiry.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl}
}

func (c *MemoryCache) Get(ctx context.Context) ([]model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, ErrMiss
	}
	if c.ttl > 0 && time.Now().After(c.expires) {
		return nil, ErrMiss
	}

	result := make([]model.Product, len(c.products))
	copy(result, c.products)
	return result, nil
}

func (c *MemoryCache) Set(ctx context.Context, products []model.Product) error {
	stored := make([]model.Product, len(products))
	copy(stored, products)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = stored
	c.valid = true
	if c.ttl > 0 {
		c.expires = time.Now().Add(c.ttl)
	}
	return nil
}

func (c *MemoryCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = nil
	c.valid = false
	return nil
}
