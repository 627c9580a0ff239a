package di

import (
	"go.uber.org/fx"

	"github.com/lodgemart/lodgemart/internal/adapter/mailer"
	"github.com/lodgemart/lodgemart/internal/app"
	"github.com/lodgemart/lodgemart/internal/cache"
	"github.com/lodgemart/lodgemart/internal/config"
	"github.com/lodgemart/lodgemart/internal/logger"
	"github.com/lodgemart/lodgemart/internal/pkg/auth"
	"github.com/lodgemart/lodgemart/internal/server/http/handlers"
	"github.com/lodgemart/lodgemart/internal/server/http/router"
	"github.com/lodgemart/lodgemart/internal/storage/postgres"
	"github.com/lodgemart/lodgemart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
