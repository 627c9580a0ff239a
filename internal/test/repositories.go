package test

import (
	"context"

	domainErrors "github.com/lodgemart/lodgemart/internal/domain/errors"
	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByID    map[int64]*model.User
	ByEmail map[string]*model.User
	ByPhone map[string]*model.User
	ByToken map[string]*model.User
	Next    int64
	Err     error

	UpdateFn func(context.Context, *model.User) error
	Updates  []model.User
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByID:    make(map[int64]*model.User),
		ByEmail: make(map[string]*model.User),
		ByPhone: make(map[string]*model.User),
		ByToken: make(map[string]*model.User),
		Next:    1,
	}
}

// Seed registers a user directly, assigning an identifier when absent.
func (s *UserRepositoryStub) Seed(user *model.User) *model.User {
	if user.ID == 0 {
		user.ID = s.Next
		s.Next++
	} else if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
	s.index(user)
	return user
}

func (s *UserRepositoryStub) index(user *model.User) {
	s.ByID[user.ID] = user
	if user.Email != "" {
		s.ByEmail[user.Email] = user
	}
	if user.Phone != "" {
		s.ByPhone[user.Phone] = user
	}
	if user.VerificationToken != "" {
		s.ByToken[user.VerificationToken] = user
	}
}

// Create registers user unless stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if user.Phone != "" {
		if _, exists := s.ByPhone[user.Phone]; exists {
			return nil, domainErrors.ErrPhoneTaken
		}
	}
	stored := *user
	stored.ID = s.Next
	s.Next++
	s.index(&stored)
	return &stored, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByPhone fetches user by phone or returns not found.
func (s *UserRepositoryStub) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByPhone[phone]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByVerificationToken fetches user holding the token or returns not found.
func (s *UserRepositoryStub) GetByVerificationToken(ctx context.Context, token string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByToken[token]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// HasAdmin reports whether any stored user carries the admin role.
func (s *UserRepositoryStub) HasAdmin(ctx context.Context) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	for _, user := range s.ByID {
		if user.IsAdmin() {
			return true, nil
		}
	}
	return false, nil
}

// Update records the invocation and re-indexes the user.
func (s *UserRepositoryStub) Update(ctx context.Context, user *model.User) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, user)
	}
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[user.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Updates = append(s.Updates, *user)
	s.index(user)
	return nil
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error

	ListFn   func(context.Context) ([]model.Product, error)
	UpdateFn func(context.Context, *model.Product) error
	Updates  []model.Product
}

// NewProductRepositoryStub constructs stub repository with initialized state.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Seed registers a product directly, assigning an identifier when absent.
func (s *ProductRepositoryStub) Seed(product *model.Product) *model.Product {
	if product.ID == 0 {
		product.ID = s.Next
		s.Next++
	} else if product.ID >= s.Next {
		s.Next = product.ID + 1
	}
	s.Products[product.ID] = product
	return product
}

// Create stores the product under a fresh identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *product
	stored.ID = s.Next
	s.Next++
	s.Products[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored product.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0, len(s.Products))
	for _, product := range s.Products {
		out = append(out, *product)
	}
	return out, nil
}

// ListByCategory returns stored products matching the category.
func (s *ProductRepositoryStub) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0)
	for _, product := range s.Products {
		if product.Category == category {
			out = append(out, *product)
		}
	}
	return out, nil
}

// Update records the invocation and overwrites the stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[product.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Updates = append(s.Updates, *product)
	copied := *product
	s.Products[product.ID] = &copied
	return nil
}

// Delete removes and returns the stored product.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	product, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return product, nil
}

// OrderLink records a user-to-order history association.
type OrderLink struct {
	UserID  int64
	OrderID int64
}

// OrderRepositoryStub stores orders and history links in-memory for tests.
type OrderRepositoryStub struct {
	Orders map[int64]*model.Order
	Links  []OrderLink
	Next   int64
	Err    error

	CreateFn func(context.Context, *model.Order) (*model.Order, error)
	LinkErr  error
	Unlinked []OrderLink
}

// NewOrderRepositoryStub constructs stub repository with initialized state.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Create stores the order under a fresh identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *order
	stored.ID = s.Next
	s.Next++
	s.Orders[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches order by identifier or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Order, 0, len(s.Orders))
	for _, order := range s.Orders {
		out = append(out, *order)
	}
	return out, nil
}

// ListByUser returns orders linked to the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Order, 0)
	for _, link := range s.Links {
		if link.UserID != userID {
			continue
		}
		if order, ok := s.Orders[link.OrderID]; ok {
			out = append(out, *order)
		}
	}
	return out, nil
}

// Delete removes and returns the stored order.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return order, nil
}

// LinkToUser records a history association.
func (s *OrderRepositoryStub) LinkToUser(ctx context.Context, userID, orderID int64) error {
	if s.LinkErr != nil {
		return s.LinkErr
	}
	s.Links = append(s.Links, OrderLink{UserID: userID, OrderID: orderID})
	return nil
}

// UnlinkFromUser drops a history association, recording the request.
func (s *OrderRepositoryStub) UnlinkFromUser(ctx context.Context, userID, orderID int64) error {
	s.Unlinked = append(s.Unlinked, OrderLink{UserID: userID, OrderID: orderID})
	kept := s.Links[:0]
	for _, link := range s.Links {
		if link.UserID != userID || link.OrderID != orderID {
			kept = append(kept, link)
		}
	}
	s.Links = kept
	return nil
}
