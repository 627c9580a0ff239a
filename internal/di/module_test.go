package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/lodgemart/lodgemart/internal/adapter/mailer"
	"github.com/lodgemart/lodgemart/internal/app"
	"github.com/lodgemart/lodgemart/internal/cache"
	"github.com/lodgemart/lodgemart/internal/config"
	"github.com/lodgemart/lodgemart/internal/domain/repository"
	"github.com/lodgemart/lodgemart/internal/storage/postgres"
	"github.com/lodgemart/lodgemart/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		CacheTTL:        time.Minute,
		OTPTTL:          time.Minute,
		VerificationTTL: time.Hour,
		MailWorkers:     1,
		MailQueueSize:   1,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	productRepo := test.NewProductRepositoryStub()
	orderRepo := test.NewOrderRepositoryStub()

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(cache.ProductCache(cache.NewMemoryCache(0))),
			fx.Replace(mailer.Notifier(&test.NotifierStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
