package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/offerdesk/offerdesk/internal/notify"
	"github.com/offerdesk/offerdesk/internal/notify/mocks"
	domain "github.com/offerdesk/offerdesk/pkg/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dispatcherEvent() notify.Event {
	return notify.Event{
		Kind: notify.EventOfferSubmitted,
		Offer: domain.Offer{
			ID:           "offer-1",
			PropertyID:   "prop-1",
			OfferedPrice: 100000,
			Status:       domain.OfferPending,
		},
		BuyerName: "Jane Doe",
	}
}

func TestDispatcher_DeliversQueuedEvents(t *testing.T) {
	t.Parallel()

	n := mocks.NewMockNotifier(t)
	delivered := make(chan notify.Event, 1)
	n.EXPECT().
		Send(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event notify.Event) {
			delivered <- event
		}).
		Return(nil).
		Once()

	d := notify.NewDispatcher(n, discardLogger(), notify.WithRateLimit(100, 10))
	d.Start(context.Background())
	defer d.Stop()

	d.Enqueue(dispatcherEvent())

	select {
	case got := <-delivered:
		assert.Equal(t, notify.EventOfferSubmitted, got.Kind)
		assert.Equal(t, "offer-1", got.Offer.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was never delivered")
	}
}

func TestDispatcher_RetriesOnceThenGivesUp(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	n := mocks.NewMockNotifier(t)
	n.EXPECT().
		Send(mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ notify.Event) {
			attempts.Add(1)
		}).
		Return(errors.New("webhook down")).
		Times(2)

	d := notify.NewDispatcher(n, discardLogger(), notify.WithRateLimit(100, 10))
	d.Start(context.Background())

	d.Enqueue(dispatcherEvent())
	d.Stop()

	assert.Equal(t, int32(2), attempts.Load())
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	t.Parallel()

	// Never started, so nothing drains the queue.
	n := mocks.NewMockNotifier(t)
	d := notify.NewDispatcher(n, discardLogger(), notify.WithQueueSize(1))

	d.Enqueue(dispatcherEvent())
	d.Enqueue(dispatcherEvent()) // dropped, must not block or panic
}

func TestDispatcher_StopDrainsQueue(t *testing.T) {
	t.Parallel()

	var delivered atomic.Int32
	n := mocks.NewMockNotifier(t)
	n.EXPECT().
		Send(mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ notify.Event) {
			delivered.Add(1)
		}).
		Return(nil).
		Times(3)

	d := notify.NewDispatcher(n, discardLogger(), notify.WithRateLimit(1000, 100))
	d.Start(context.Background())

	for range 3 {
		d.Enqueue(dispatcherEvent())
	}
	d.Stop()

	assert.Equal(t, int32(3), delivered.Load())
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	n := mocks.NewMockNotifier(t)
	d := notify.NewDispatcher(n, discardLogger())
	d.Start(context.Background())

	d.Stop()
	require.NotPanics(t, d.Stop)
}
