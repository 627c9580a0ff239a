package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lodgemart/lodgemart/internal/cache"
	domainErrors "github.com/lodgemart/lodgemart/internal/domain/errors"
	"github.com/lodgemart/lodgemart/internal/domain/model"
	"github.com/lodgemart/lodgemart/internal/domain/repository"
)

// ProductUseCase exposes the catalog, with an admin gate on mutations and a
// list cache invalidated on every write.
type ProductUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
	cache    cache.ProductCache
	logger   *slog.Logger
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(
	users repository.UserRepository,
	products repository.ProductRepository,
	productCache cache.ProductCache,
	logger *slog.Logger,
) *ProductUseCase {
	return &ProductUseCase{users: users, products: products, cache: productCache, logger: logger}
}

// List returns the full catalog through the cache, populating it on a miss.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	cached, err := u.cache.Get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		u.logger.Warn("product cache read failed", slog.String("error", err.Error()))
	}

	products, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.cache.Set(ctx, products); err != nil {
		u.logger.Warn("product cache write failed", slog.String("error", err.Error()))
	}
	return products, nil
}

// Get fetches one product by identifier.
func (u *ProductUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// ListByCategory returns products of the category; an empty result is
// reported as not found.
func (u *ProductUseCase) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := u.products.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return products, nil
}

// Create adds a catalog entry. Admin only.
func (u *ProductUseCase) Create(ctx context.Context, actorID int64, product *model.Product) (*model.Product, error) {
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	created, err := u.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return created, nil
}

// Update overwrites a catalog entry. Admin only.
func (u *ProductUseCase) Update(ctx context.Context, actorID int64, product *model.Product) (*model.Product, error) {
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	if err := u.products.Update(ctx, product); err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return product, nil
}

// Delete removes a catalog entry and returns it. Admin only.
func (u *ProductUseCase) Delete(ctx context.Context, actorID, id int64) (*model.Product, error) {
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	deleted, err := u.products.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return deleted, nil
}

func (u *ProductUseCase) requireAdmin(ctx context.Context, actorID int64) error {
	user, err := u.users.GetByID(ctx, actorID)
	if err != nil || !user.IsAdmin() {
		return domainErrors.ErrNotAdmin
	}
	return nil
}

func (u *ProductUseCase) invalidate(ctx context.Context) {
	if err := u.cache.Invalidate(ctx); err != nil {
		u.logger.Warn("product cache invalidation failed", slog.String("error", err.Error()))
	}
}
