package mailer

import (
	"context"
	"log/slog"
	"time"

	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// Customer carries the contact fields attached to an order notification.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// OrderNotification describes a placed order for the admin mailbox. Total is
// the caller-declared amount and is not re-derived from the items.
type OrderNotification struct {
	Items     []model.OrderItem
	Total     float64
	OrderDate time.Time
}

// Notifier exposes the outbound email operations used by the storefront.
type Notifier interface {
	SendOrderOTP(ctx context.Context, email, code string) error
	SendVerificationEmail(ctx context.Context, email, token string) error
	SendOrderNotification(ctx context.Context, n OrderNotification, c Customer) error
}

// LogNotifier writes would-be emails to the log. It backs deployments without
// an SMTP relay configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendOrderOTP(ctx context.Context, email, code string) error {
	n.logger.Info("order otp issued", slog.String("email", email), slog.String("code", code))
	return nil
}

func (n *LogNotifier) SendVerificationEmail(ctx context.Context, email, token string) error {
	n.logger.Info("verification email issued", slog.String("email", email), slog.String("token", token))
	return nil
}

func (n *LogNotifier) SendOrderNotification(ctx context.Context, notification OrderNotification, c Customer) error {
	n.logger.Info("order notification",
		slog.Int("items", len(notification.Items)),
		slog.Float64("total", notification.Total),
		slog.String("customer", c.Email),
	)
	return nil
}
