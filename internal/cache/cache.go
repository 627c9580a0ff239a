package cache

import (
	"context"
	"errors"

	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// ErrMiss signals that no cached product list is available.
var ErrMiss = errors.New("cache miss")

// ProductCache stores the full product listing. It is a single-key
// invalidation cache: every catalog mutation calls Invalidate and the next
// List repopulates it.
type ProductCache interface {
	Get(ctx context.Context) ([]model.Product, error)
	Set(ctx context.Context, products []model.Product) error
	Invalidate(ctx context.Context) error
}
