package test

import (
	"context"
	"time"

	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// AuthFacadeStub simulates account facade interactions.
type AuthFacadeStub struct {
	SignUpFn             func(context.Context, string, string, string, string, string, string) (*model.User, bool, error)
	AuthenticateFn       func(context.Context, string, string) (*model.User, string, error)
	VerifyEmailFn        func(context.Context, string) error
	ResendVerificationFn func(context.Context, string) error
	UpdateProfileFn      func(context.Context, int64, string, string, string, string) (*model.User, error)
	ChangePasswordFn     func(context.Context, int64, string, string) error
	ParseFn              func(string) (int64, error)
	UserFn               func(context.Context, int64) (*model.User, error)
}

// SignUp delegates to override or reports a created user account.
func (s AuthFacadeStub) SignUp(ctx context.Context, name, email, phone, address, password, role string) (*model.User, bool, error) {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, name, email, phone, address, password, role)
	}
	return &model.User{ID: 1, Name: name, Email: email, Role: model.RoleUser}, true, nil
}

// Authenticate delegates to override or returns a default session.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleUser}, "token", nil
}

// VerifyEmail delegates to override or succeeds.
func (s AuthFacadeStub) VerifyEmail(ctx context.Context, token string) error {
	if s.VerifyEmailFn != nil {
		return s.VerifyEmailFn(ctx, token)
	}
	return nil
}

// ResendVerification delegates to override or succeeds.
func (s AuthFacadeStub) ResendVerification(ctx context.Context, email string) error {
	if s.ResendVerificationFn != nil {
		return s.ResendVerificationFn(ctx, email)
	}
	return nil
}

// UpdateProfile delegates to override or echoes the update.
func (s AuthFacadeStub) UpdateProfile(ctx context.Context, userID int64, name, email, phone, address string) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, name, email, phone, address)
	}
	return &model.User{ID: userID, Name: name, Email: email, Phone: phone, Address: address}, nil
}

// ChangePassword delegates to override or succeeds.
func (s AuthFacadeStub) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, userID, current, next)
	}
	return nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// User delegates to override or returns a default account.
func (s AuthFacadeStub) User(ctx context.Context, userID int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, userID)
	}
	return &model.User{ID: userID, Role: model.RoleUser}, nil
}

// OrderFacadeStub provides controllable behaviour for checkout endpoints.
type OrderFacadeStub struct {
	RequestOTPFn  func(context.Context, int64) error
	PlaceOrderFn  func(context.Context, int64, []model.OrderItem, string, float64) (*model.Order, []model.Product, error)
	OrdersFn      func(context.Context, int64) ([]model.Order, error)
	DeleteOrderFn func(context.Context, int64, int64) (*model.Order, error)
}

// RequestOrderOTP delegates to override or succeeds.
func (s OrderFacadeStub) RequestOrderOTP(ctx context.Context, userID int64) error {
	if s.RequestOTPFn != nil {
		return s.RequestOTPFn(ctx, userID)
	}
	return nil
}

// PlaceOrder delegates to override or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, items []model.OrderItem, otpCode string, total float64) (*model.Order, []model.Product, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID, items, otpCode, total)
	}
	return &model.Order{ID: 1, Items: items, OrderDate: time.Unix(0, 0)}, nil, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1}}, nil
}

// DeleteOrder delegates to override or returns a default removed order.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID}, nil
}

// ProductFacadeStub simulates catalog operations.
type ProductFacadeStub struct {
	ProductsFn           func(context.Context) ([]model.Product, error)
	ProductFn            func(context.Context, int64) (*model.Product, error)
	ProductsByCategoryFn func(context.Context, string) ([]model.Product, error)
	CreateProductFn      func(context.Context, int64, *model.Product) (*model.Product, error)
	UpdateProductFn      func(context.Context, int64, *model.Product) (*model.Product, error)
	DeleteProductFn      func(context.Context, int64, int64) (*model.Product, error)
}

// Products returns the configured catalog.
func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "towel"}}, nil
}

// Product returns the configured entry.
func (s ProductFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id}, nil
}

// ProductsByCategory returns the configured category slice.
func (s ProductFacadeStub) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if s.ProductsByCategoryFn != nil {
		return s.ProductsByCategoryFn(ctx, category)
	}
	return []model.Product{{ID: 1, Category: category}}, nil
}

// CreateProduct delegates to override or echoes the product.
func (s ProductFacadeStub) CreateProduct(ctx context.Context, actorID int64, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, actorID, product)
	}
	created := *product
	created.ID = 1
	return &created, nil
}

// UpdateProduct delegates to override or echoes the product.
func (s ProductFacadeStub) UpdateProduct(ctx context.Context, actorID int64, product *model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, actorID, product)
	}
	return product, nil
}

// DeleteProduct delegates to override or returns a default removed entry.
func (s ProductFacadeStub) DeleteProduct(ctx context.Context, actorID, id int64) (*model.Product, error) {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, actorID, id)
	}
	return &model.Product{ID: id}, nil
}

// StorefrontFacadeStub aggregates facade stubs for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	ProductFacadeStub
}
