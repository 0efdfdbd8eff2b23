// Package notify defines the notification interface and implementations
// for offer event delivery.
package notify

import (
	"context"

	domain "github.com/offerdesk/offerdesk/pkg/types"
)

// EventKind identifies what happened to an offer.
type EventKind string

// Event kinds.
const (
	EventOfferSubmitted    EventKind = "offer_submitted"
	EventOfferBelowMinimum EventKind = "offer_below_minimum"
	EventOfferRaised       EventKind = "offer_raised"
	EventOfferAccepted     EventKind = "offer_accepted"
	EventOfferRejected     EventKind = "offer_rejected"
	EventOfferCountered    EventKind = "offer_countered"
	EventOffersExpired     EventKind = "offers_expired"
)

// Event carries the data needed to notify about an offer change. Delivery is
// best effort; the offer itself is already persisted by the time an Event is
// queued.
type Event struct {
	Kind          EventKind
	Offer         domain.Offer
	BuyerName     string
	PropertyTitle string
	// ExpiredCount is set for EventOffersExpired, where no single offer applies.
	ExpiredCount int
}

// Notifier defines the interface for sending offer event notifications.
type Notifier interface {
	Send(ctx context.Context, event Event) error
}
