package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/lodgemart/lodgemart/internal/config"
)

// Module provides the product cache implementation selected by configuration.
var Module = fx.Options(
	fx.Provide(newProductCache),
)

type cacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newProductCache(p cacheParams) ProductCache {
	if p.Config.RedisAddress == "" {
		return NewMemoryCache(p.Config.CacheTTL)
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	p.Logger.Info("using redis product cache", slog.String("addr", p.Config.RedisAddress))
	return NewRedisCache(client, p.Config.CacheTTL)
}
