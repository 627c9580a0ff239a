package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lodgemart/lodgemart/internal/adapter/mailer"
	testhelpers "github.com/lodgemart/lodgemart/internal/test"
)

func TestNewMailDispatcherDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	disp := NewMailDispatcher(&testhelpers.NotifierStub{}, 0, 0, logger)
	if disp.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", disp.workers)
	}
	if cap(disp.jobs) != 1 {
		t.Fatalf("expected queue size default to 1, got %d", cap(disp.jobs))
	}
}

func TestMailDispatcherDeliversNotifications(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	notifier := &testhelpers.NotifierStub{}
	disp := NewMailDispatcher(notifier, 1, 4, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	disp.Start(ctx)

	disp.EnqueueOrderNotification(
		mailer.OrderNotification{Total: 42.5, OrderDate: time.Now()},
		mailer.Customer{Name: "Maria", Email: "maria@example.com"},
	)

	deadline := time.After(500 * time.Millisecond)
	for {
		notifier.Lock()
		delivered := len(notifier.OrderNotifications) > 0
		notifier.Unlock()
		if delivered {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for delivery")
		case <-time.After(10 * time.Millisecond):
		}
	}

	disp.Stop()
	notifier.Lock()
	defer notifier.Unlock()
	if notifier.OrderNotifications[0].Customer.Email != "maria@example.com" {
		t.Fatalf("unexpected customer %q", notifier.OrderNotifications[0].Customer.Email)
	}
	if notifier.OrderNotifications[0].Notification.Total != 42.5 {
		t.Fatalf("unexpected total %v", notifier.OrderNotifications[0].Notification.Total)
	}
}

func TestMailDispatcherDropsWhenQueueFull(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	disp := NewMailDispatcher(&testhelpers.NotifierStub{}, 1, 1, logger)

	// Not started, so nothing drains the queue.
	disp.EnqueueOrderNotification(mailer.OrderNotification{}, mailer.Customer{Email: "a@example.com"})
	disp.EnqueueOrderNotification(mailer.OrderNotification{}, mailer.Customer{Email: "b@example.com"})

	if len(disp.jobs) != 1 {
		t.Fatalf("expected one queued job, got %d", len(disp.jobs))
	}
}

func TestMailDispatcherSurvivesDeliveryErrors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	notifier := &testhelpers.NotifierStub{OrderNotificationErr: errors.New("relay down")}
	disp := NewMailDispatcher(notifier, 1, 2, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	disp.Start(ctx)

	disp.EnqueueOrderNotification(mailer.OrderNotification{}, mailer.Customer{Email: "x@example.com"})
	disp.EnqueueOrderNotification(mailer.OrderNotification{}, mailer.Customer{Email: "y@example.com"})

	deadline := time.After(500 * time.Millisecond)
	for {
		notifier.Lock()
		attempts := len(notifier.OrderNotifications)
		notifier.Unlock()
		if attempts == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for delivery attempts")
		case <-time.After(10 * time.Millisecond):
		}
	}
	disp.Stop()
}
