package test

import (
	"context"
	"sync"

	"github.com/lodgemart/lodgemart/internal/adapter/mailer"
)

// SentOrderNotification pairs a delivered notification with its customer.
type SentOrderNotification struct {
	Notification mailer.OrderNotification
	Customer     mailer.Customer
}

// NotifierStub records outbound emails for assertions.
type NotifierStub struct {
	OTPErr               error
	VerificationErr      error
	OrderNotificationErr error

	OTPSends           []string
	OTPCodes           []string
	VerificationSends  []string
	VerificationTokens []string
	OrderNotifications []SentOrderNotification

	mu sync.Mutex
}

// Lock exposes internal mutex for external synchronization.
func (s *NotifierStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *NotifierStub) Unlock() { s.mu.Unlock() }

// SendOrderOTP records the recipient and code.
func (s *NotifierStub) SendOrderOTP(ctx context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.OTPSends = append(s.OTPSends, email)
	s.OTPCodes = append(s.OTPCodes, code)
	return s.OTPErr
}

// SendVerificationEmail records the recipient and token.
func (s *NotifierStub) SendVerificationEmail(ctx context.Context, email, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.VerificationSends = append(s.VerificationSends, email)
	s.VerificationTokens = append(s.VerificationTokens, token)
	return s.VerificationErr
}

// SendOrderNotification records the delivery attempt.
func (s *NotifierStub) SendOrderNotification(ctx context.Context, n mailer.OrderNotification, c mailer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.OrderNotifications = append(s.OrderNotifications, SentOrderNotification{Notification: n, Customer: c})
	return s.OrderNotificationErr
}

// AdminNotifierStub records enqueued admin notifications.
type AdminNotifierStub struct {
	Enqueued []SentOrderNotification
}

// EnqueueOrderNotification stores the notification for assertions.
func (s *AdminNotifierStub) EnqueueOrderNotification(n mailer.OrderNotification, c mailer.Customer) {
	s.Enqueued = append(s.Enqueued, SentOrderNotification{Notification: n, Customer: c})
}

var _ mailer.Notifier = (*NotifierStub)(nil)
