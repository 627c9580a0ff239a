package app

import (
	"context"

	"github.com/lodgemart/lodgemart/internal/domain/model"
	"github.com/lodgemart/lodgemart/internal/usecase"
)

// StorefrontFacade aggregates the use cases behind a single surface consumed
// by the HTTP layer.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	checkout *usecase.CheckoutUseCase
	catalog  *usecase.ProductUseCase
}

func NewStorefrontFacade(auth *usecase.AuthUseCase, checkout *usecase.CheckoutUseCase, catalog *usecase.ProductUseCase) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, checkout: checkout, catalog: catalog}
}

func (f *StorefrontFacade) SignUp(ctx context.Context, name, email, phone, address, password, role string) (*model.User, bool, error) {
	return f.auth.SignUp(ctx, usecase.SignUpInput{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Address:  address,
		Password: password,
		Role:     model.Role(role),
	})
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StorefrontFacade) VerifyEmail(ctx context.Context, token string) error {
	return f.auth.VerifyEmail(ctx, token)
}

func (f *StorefrontFacade) ResendVerification(ctx context.Context, email string) error {
	return f.auth.ResendVerification(ctx, email)
}

func (f *StorefrontFacade) UpdateProfile(ctx context.Context, userID int64, name, email, phone, address string) (*model.User, error) {
	return f.auth.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	})
}

func (f *StorefrontFacade) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	return f.auth.ChangePassword(ctx, userID, current, next)
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) User(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *StorefrontFacade) RequestOrderOTP(ctx context.Context, userID int64) error {
	return f.checkout.RequestOTP(ctx, userID)
}

func (f *StorefrontFacade) PlaceOrder(ctx context.Context, userID int64, items []model.OrderItem, otpCode string, total float64) (*model.Order, []model.Product, error) {
	return f.checkout.PlaceOrder(ctx, userID, items, otpCode, total)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.checkout.Orders(ctx, userID)
}

func (f *StorefrontFacade) DeleteOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.checkout.DeleteOrder(ctx, userID, orderID)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return f.catalog.ListByCategory(ctx, category)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, actorID int64, product *model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, actorID, product)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, actorID int64, product *model.Product) (*model.Product, error) {
	return f.catalog.Update(ctx, actorID, product)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, actorID, id int64) (*model.Product, error) {
	return f.catalog.Delete(ctx, actorID, id)
}
