package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lodgemart/lodgemart/internal/adapter/mailer"
	domainErrors "github.com/lodgemart/lodgemart/internal/domain/errors"
	"github.com/lodgemart/lodgemart/internal/domain/model"
	"github.com/lodgemart/lodgemart/internal/domain/repository"
	"github.com/lodgemart/lodgemart/internal/pkg/otp"
)

// AdminNotifier queues order notifications for delivery off the request path.
type AdminNotifier interface {
	EnqueueOrderNotification(n mailer.OrderNotification, c mailer.Customer)
}

// CheckoutUseCase ties together OTP issuance, order persistence, inventory
// mutation and admin notification.
type CheckoutUseCase struct {
	users       repository.UserRepository
	products    repository.ProductRepository
	orders      repository.OrderRepository
	notifier    mailer.Notifier
	adminNotify AdminNotifier
	otpTTL      time.Duration
	logger      *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	users repository.UserRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	notifier mailer.Notifier,
	adminNotify AdminNotifier,
	otpTTL time.Duration,
	logger *slog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		users:       users,
		products:    products,
		orders:      orders,
		notifier:    notifier,
		adminNotify: adminNotify,
		otpTTL:      otpTTL,
		logger:      logger,
	}
}

// RequestOTP issues a checkout code for the account and emails it. Admins
// short-circuit to success without a code; unverified accounts without a
// federated login are rejected. A new request overwrites any prior code, so
// at most one code is live per account.
func (u *CheckoutUseCase) RequestOTP(ctx context.Context, userID int64) error {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsAdmin() {
		return nil
	}

	if !user.EmailVerified && !user.HasFederatedLogin() {
		return domainErrors.ErrEmailNotVerified
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	expires := time.Now().Add(u.otpTTL)

	user.OrderOTP = code
	user.OrderOTPExpires = &expires
	if err := u.users.Update(ctx, user); err != nil {
		return err
	}

	// The stored code stays in place even when dispatch fails; the caller
	// just cannot assume it was delivered.
	if err := u.notifier.SendOrderOTP(ctx, user.Email, code); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrNotificationFailed, err)
	}

	return nil
}

// PlaceOrder converts a cart into a persisted order. Non-admin callers must
// present the live OTP, which is consumed on success before any write to the
// order tables. Returns the created order and the products whose stock was
// actually updated.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, userID int64, items []model.OrderItem, otpCode string, total float64) (*model.Order, []model.Product, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if !user.IsAdmin() {
		if !otp.Verify(user.OrderOTP, user.OrderOTPExpires, otpCode) {
			return nil, nil, domainErrors.ErrInvalidOTP
		}

		// A code authorizes exactly one order.
		user.OrderOTP = ""
		user.OrderOTPExpires = nil
		if err := u.users.Update(ctx, user); err != nil {
			return nil, nil, err
		}
	}

	order, updated, err := u.commitOrder(ctx, user, items)
	if err != nil {
		return nil, nil, err
	}

	u.adminNotify.EnqueueOrderNotification(
		mailer.OrderNotification{Items: order.Items, Total: total, OrderDate: order.OrderDate},
		mailer.Customer{Name: user.Name, Email: user.Email, Phone: user.Phone},
	)

	return order, updated, nil
}

// commitOrder runs the order/stock/history write sequence. The three writes
// are not one transaction; keeping them in a single function localizes any
// future tightening.
func (u *CheckoutUseCase) commitOrder(ctx context.Context, user *model.User, items []model.OrderItem) (*model.Order, []model.Product, error) {
	order, err := u.orders.Create(ctx, &model.Order{Username: user.Name, Items: items})
	if err != nil {
		return nil, nil, err
	}

	updated := make([]model.Product, 0, len(items))
	for _, item := range items {
		product, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				// Unknown product ids are tolerated; the order keeps the
				// line item, inventory is left alone.
				u.logger.Warn("order item references unknown product",
					slog.Int64("product_id", item.ProductID), slog.Int64("order_id", order.ID))
				continue
			}
			return nil, nil, err
		}

		product.Stock = max(0, product.Stock-item.Quantity)
		if err := u.products.Update(ctx, product); err != nil {
			return nil, nil, err
		}
		updated = append(updated, *product)
	}

	if err := u.orders.LinkToUser(ctx, user.ID, order.ID); err != nil {
		return nil, nil, err
	}

	return order, updated, nil
}

// Orders returns all orders for admins and the caller's own history otherwise.
func (u *CheckoutUseCase) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.IsAdmin() {
		return u.orders.ListAll(ctx)
	}
	return u.orders.ListByUser(ctx, userID)
}

// DeleteOrder removes the order from the caller's history and deletes the
// record globally, returning the removed order.
func (u *CheckoutUseCase) DeleteOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if err := u.orders.UnlinkFromUser(ctx, userID, orderID); err != nil {
		u.logger.Warn("order unlink failed",
			slog.Int64("user_id", userID), slog.Int64("order_id", orderID), slog.String("error", err.Error()))
	}
	return u.orders.Delete(ctx, orderID)
}
