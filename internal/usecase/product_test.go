package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/lodgemart/lodgemart/internal/cache"
	domainErrors "github.com/lodgemart/lodgemart/internal/domain/errors"
	"github.com/lodgemart/lodgemart/internal/domain/model"
	testhelpers "github.com/lodgemart/lodgemart/internal/test"
)

func newProductFixture() (*ProductUseCase, *testhelpers.UserRepositoryStub, *testhelpers.ProductRepositoryStub, *cache.MemoryCache) {
	users := testhelpers.NewUserRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	memCache := cache.NewMemoryCache(0)
	uc := NewProductUseCase(users, products, memCache, discardLogger())
	return uc, users, products, memCache
}

func TestListPopulatesCache(t *testing.T) {
	uc, _, products, memCache := newProductFixture()
	products.Seed(&model.Product{Name: "soap", Stock: 5})

	listed, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one product, got %d", len(listed))
	}

	cached, err := memCache.Get(context.Background())
	if err != nil {
		t.Fatalf("expected populated cache, got %v", err)
	}
	if len(cached) != 1 || cached[0].Name != "soap" {
		t.Fatalf("unexpected cache content %+v", cached)
	}
}

func TestListServesFromCacheWithoutRepository(t *testing.T) {
	uc, _, products, memCache := newProductFixture()
	if err := memCache.Set(context.Background(), []model.Product{{ID: 9, Name: "cached"}}); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	products.ListFn = func(context.Context) ([]model.Product, error) {
		t.Fatal("repository must not be hit on a cache hit")
		return nil, nil
	}

	listed, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != 9 {
		t.Fatalf("expected cached product, got %+v", listed)
	}
}

func TestListByCategoryEmptyIsNotFound(t *testing.T) {
	uc, _, products, _ := newProductFixture()
	products.Seed(&model.Product{Name: "soap", Category: "toiletries"})

	if _, err := uc.ListByCategory(context.Background(), "linen"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for empty category, got %v", err)
	}
	listed, err := uc.ListByCategory(context.Background(), "toiletries")
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one product, got %v (%v)", listed, err)
	}
}

func TestMutationsRequireAdmin(t *testing.T) {
	uc, users, products, _ := newProductFixture()
	user := users.Seed(&model.User{Role: model.RoleUser, Email: "u@example.com"})
	seeded := products.Seed(&model.Product{Name: "soap"})

	if _, err := uc.Create(context.Background(), user.ID, &model.Product{Name: "towel"}); !errors.Is(err, domainErrors.ErrNotAdmin) {
		t.Fatalf("expected admin gate on create, got %v", err)
	}
	if _, err := uc.Update(context.Background(), user.ID, seeded); !errors.Is(err, domainErrors.ErrNotAdmin) {
		t.Fatalf("expected admin gate on update, got %v", err)
	}
	if _, err := uc.Delete(context.Background(), user.ID, seeded.ID); !errors.Is(err, domainErrors.ErrNotAdmin) {
		t.Fatalf("expected admin gate on delete, got %v", err)
	}
	if _, err := uc.Create(context.Background(), 404, &model.Product{Name: "towel"}); !errors.Is(err, domainErrors.ErrNotAdmin) {
		t.Fatalf("unknown actor is treated as non-admin, got %v", err)
	}
}

func TestMutationsInvalidateCache(t *testing.T) {
	uc, users, products, memCache := newProductFixture()
	admin := users.Seed(&model.User{Role: model.RoleAdmin, Email: "boss@example.com"})
	seeded := products.Seed(&model.Product{Name: "soap", Stock: 5})

	if _, err := uc.List(context.Background()); err != nil {
		t.Fatalf("prime cache: %v", err)
	}
	if _, err := memCache.Get(context.Background()); err != nil {
		t.Fatalf("cache should be primed: %v", err)
	}

	if _, err := uc.Create(context.Background(), admin.ID, &model.Product{Name: "towel"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := memCache.Get(context.Background()); !errors.Is(err, cache.ErrMiss) {
		t.Fatalf("create must invalidate the cache, got %v", err)
	}

	if _, err := uc.List(context.Background()); err != nil {
		t.Fatalf("re-prime cache: %v", err)
	}
	seeded.Stock = 1
	if _, err := uc.Update(context.Background(), admin.ID, seeded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := memCache.Get(context.Background()); !errors.Is(err, cache.ErrMiss) {
		t.Fatalf("update must invalidate the cache, got %v", err)
	}

	if _, err := uc.List(context.Background()); err != nil {
		t.Fatalf("re-prime cache: %v", err)
	}
	if _, err := uc.Delete(context.Background(), admin.ID, seeded.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := memCache.Get(context.Background()); !errors.Is(err, cache.ErrMiss) {
		t.Fatalf("delete must invalidate the cache, got %v", err)
	}
}

func TestDeleteReturnsRemovedProduct(t *testing.T) {
	uc, users, products, _ := newProductFixture()
	admin := users.Seed(&model.User{Role: model.RoleAdmin, Email: "boss@example.com"})
	seeded := products.Seed(&model.Product{Name: "soap"})

	removed, err := uc.Delete(context.Background(), admin.ID, seeded.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.ID != seeded.ID || removed.Name != "soap" {
		t.Fatalf("expected removed product back, got %+v", removed)
	}
	if _, err := uc.Delete(context.Background(), admin.ID, seeded.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
