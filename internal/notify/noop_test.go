package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n := NewNoOpNotifier(log)
	require.NoError(t, n.Send(context.Background(), testEvent(EventOfferSubmitted)))

	out := buf.String()
	assert.Contains(t, out, "notification discarded")
	assert.Contains(t, out, "offer_submitted")
	assert.Contains(t, out, "Jane Doe")
}

func TestNoOpNotifier_BuyerLabelFallsBackToID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := testEvent(EventOfferSubmitted)
	e.BuyerName = ""

	n := NewNoOpNotifier(log)
	require.NoError(t, n.Send(context.Background(), e))
	assert.Contains(t, buf.String(), "buyer-1")
}
