package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/lodgemart/lodgemart/internal/adapter/mailer"
	"github.com/lodgemart/lodgemart/internal/config"
	"github.com/lodgemart/lodgemart/internal/domain/repository"
	pkgAuth "github.com/lodgemart/lodgemart/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	newCheckoutUseCase,
	NewProductUseCase,
)

type authUseCaseParams struct {
	fx.In

	Users    repository.UserRepository
	Hasher   pkgAuth.PasswordHasher
	Tokens   pkgAuth.Strategy
	Notifier mailer.Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newAuthUseCase(p authUseCaseParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Hasher, p.Tokens, p.Notifier, p.Config.VerificationTTL, p.Logger)
}

type checkoutUseCaseParams struct {
	fx.In

	Users       repository.UserRepository
	Products    repository.ProductRepository
	Orders      repository.OrderRepository
	Notifier    mailer.Notifier
	AdminNotify AdminNotifier
	Config      *config.Config
	Logger      *slog.Logger
}

func newCheckoutUseCase(p checkoutUseCaseParams) *CheckoutUseCase {
	return NewCheckoutUseCase(p.Users, p.Products, p.Orders, p.Notifier, p.AdminNotify, p.Config.OTPTTL, p.Logger)
}
