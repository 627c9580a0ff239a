package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lodgemart/lodgemart/internal/adapter/mailer"
)

type mailJob struct {
	notification mailer.OrderNotification
	customer     mailer.Customer
}

// MailDispatcher delivers admin order notifications off the request path
// through a bounded queue and a pool of sender goroutines.
type MailDispatcher struct {
	notifier mailer.Notifier
	workers  int
	logger   *slog.Logger

	jobs   chan mailJob
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewMailDispatcher constructs the dispatcher worker pool.
func NewMailDispatcher(notifier mailer.Notifier, workers, queueSize int, logger *slog.Logger) *MailDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &MailDispatcher{
		notifier: notifier,
		workers:  workers,
		logger:   logger,
		jobs:     make(chan mailJob, queueSize),
	}
}

// Start launches the sender goroutines.
func (d *MailDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all senders to finish.
func (d *MailDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// EnqueueOrderNotification queues an order notification for delivery. A full
// queue drops the notification rather than blocking the caller.
func (d *MailDispatcher) EnqueueOrderNotification(n mailer.OrderNotification, c mailer.Customer) {
	select {
	case d.jobs <- mailJob{notification: n, customer: c}:
	default:
		d.logger.Warn("notification queue full, dropping order notification",
			slog.String("customer", c.Email))
	}
}

func (d *MailDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-d.jobs:
			if !ok {
				return
			}
			d.deliver(ctx, job)
		}
	}
}

func (d *MailDispatcher) deliver(ctx context.Context, job mailJob) {
	if err := d.notifier.SendOrderNotification(ctx, job.notification, job.customer); err != nil {
		d.logger.Error("order notification delivery failed",
			slog.String("customer", job.customer.Email), slog.String("error", err.Error()))
	}
}
