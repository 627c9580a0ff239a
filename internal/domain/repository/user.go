package repository

import (
	"context"

	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// UserRepository describes persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
	GetByVerificationToken(ctx context.Context, token string) (*model.User, error)
	HasAdmin(ctx context.Context) (bool, error)
	Update(ctx context.Context, user *model.User) error
}
