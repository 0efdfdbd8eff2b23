package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded events. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards events with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Send logs and discards an event.
func (n *NoOpNotifier) Send(_ context.Context, event Event) error {
	n.log.Debug("notification discarded (no backend configured)",
		"kind", event.Kind,
		"offer_id", event.Offer.ID,
		"buyer", n.buyerLabel(event),
	)
	return nil
}

func (n *NoOpNotifier) buyerLabel(event Event) string {
	if event.BuyerName != "" {
		return event.BuyerName
	}
	return event.Offer.BuyerID
}
