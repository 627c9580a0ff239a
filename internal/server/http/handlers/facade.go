package handlers

import (
	"context"

	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, name, email, phone, address, password, role string) (*model.User, bool, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	UpdateProfile(ctx context.Context, userID int64, name, email, phone, address string) (*model.User, error)
	ChangePassword(ctx context.Context, userID int64, current, next string) error
	ParseToken(token string) (int64, error)
	User(ctx context.Context, userID int64) (*model.User, error)
}

// OrderFacade encapsulates checkout operations exposed via HTTP.
type OrderFacade interface {
	RequestOrderOTP(ctx context.Context, userID int64) error
	PlaceOrder(ctx context.Context, userID int64, items []model.OrderItem, otpCode string, total float64) (*model.Order, []model.Product, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	DeleteOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
}

// ProductFacade provides catalog operations.
type ProductFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	CreateProduct(ctx context.Context, actorID int64, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, actorID int64, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, actorID, id int64) (*model.Product, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	OrderFacade
	ProductFacade
}
