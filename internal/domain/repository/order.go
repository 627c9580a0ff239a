package repository

import (
	"context"

	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// OrderRepository describes persistence operations for orders and the
// per-user order-history links.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	Delete(ctx context.Context, id int64) (*model.Order, error)
	LinkToUser(ctx context.Context, userID, orderID int64) error
	UnlinkFromUser(ctx context.Context, userID, orderID int64) error
}
