package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/offerdesk/offerdesk/internal/metrics"
)

// Dispatcher decouples notification delivery from request handling. Events
// are queued on a buffered channel and drained by a single worker goroutine;
// Enqueue never blocks and delivery failures never surface to callers.
type Dispatcher struct {
	notifier    Notifier
	limiter     *rate.Limiter
	queue       chan Event
	sendTimeout time.Duration
	log         *slog.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithQueueSize sets the buffered queue depth.
func WithQueueSize(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.queue = make(chan Event, n)
		}
	}
}

// WithSendTimeout bounds each delivery attempt.
func WithSendTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.sendTimeout = timeout
		}
	}
}

// WithRateLimit throttles outbound sends.
func WithRateLimit(perSecond float64, burst int) DispatcherOption {
	return func(d *Dispatcher) {
		if perSecond > 0 && burst > 0 {
			d.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// NewDispatcher creates a dispatcher around the given notifier.
func NewDispatcher(notifier Notifier, log *slog.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		notifier:    notifier,
		limiter:     rate.NewLimiter(rate.Limit(2), 5),
		queue:       make(chan Event, 256),
		sendTimeout: 10 * time.Second,
		log:         log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start launches the delivery worker. ctx cancellation aborts in-flight
// sends; queued events still drain so Stop can return cleanly.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go d.run(ctx)
}

// Stop closes the queue and waits for the worker to drain it.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// Enqueue queues an event for delivery. If the queue is full the event is
// dropped: notifications are best effort and must never stall a request.
func (d *Dispatcher) Enqueue(event Event) {
	select {
	case d.queue <- event:
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Warn("notification queue full, dropping event",
			"kind", event.Kind,
			"offer_id", event.Offer.ID,
		)
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	defer d.wg.Done()

	for event := range d.queue {
		if err := d.limiter.Wait(ctx); err != nil {
			// Context canceled; keep draining without sending.
			continue
		}
		d.deliver(ctx, event)
	}
}

// deliver attempts a send with one retry.
func (d *Dispatcher) deliver(ctx context.Context, event Event) {
	var err error
	for attempt := 1; attempt <= 2; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
		err = d.notifier.Send(sendCtx, event)
		cancel()

		if err == nil {
			metrics.NotificationsSentTotal.WithLabelValues(string(event.Kind)).Inc()
			return
		}

		d.log.Warn("notification send failed",
			"kind", event.Kind,
			"offer_id", event.Offer.ID,
			"attempt", attempt,
			"error", err,
		)
	}

	metrics.NotificationFailuresTotal.Inc()
}
