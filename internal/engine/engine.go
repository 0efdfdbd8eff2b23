// Package engine implements the offer lifecycle: submission, raise merging,
// price-threshold resolution, admin transitions, and expiry sweeps.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/offerdesk/offerdesk/internal/metrics"
	"github.com/offerdesk/offerdesk/internal/notify"
	"github.com/offerdesk/offerdesk/internal/store"
	domain "github.com/offerdesk/offerdesk/pkg/types"
)

const defaultExpireAfter = 30 * 24 * time.Hour

// Events is the sink for offer notifications. *notify.Dispatcher satisfies it;
// delivery is fire-and-forget and never affects the calling operation.
type Events interface {
	Enqueue(event notify.Event)
}

// Engine orchestrates offer submission, transitions, and expiry.
type Engine struct {
	store  store.Store
	events Events
	log    *slog.Logger

	expireAfter time.Duration
	now         func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, events Events, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:       s,
		events:      events,
		log:         slog.Default(),
		expireAfter: defaultExpireAfter,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithExpireAfter sets how long a pending offer may sit unmodified before an
// expiry sweep marks it expired.
func WithExpireAfter(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.expireAfter = d
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// SubmitOfferInput is a buyer's offer submission. Buyer identity resolves by
// email or phone; unknown buyers are created on the fly.
type SubmitOfferInput struct {
	PropertyID     string
	OfferedPrice   float64
	Email          string
	Phone          string
	FirstName      string
	LastName       string
	BuyerType      domain.BuyerType
	PreferredAreas []string
	Source         string
}

func (in *SubmitOfferInput) validate() error {
	if in.PropertyID == "" {
		return &ValidationError{Field: "property_id", Reason: "is required"}
	}
	if in.OfferedPrice <= 0 {
		return &ValidationError{Field: "offered_price", Reason: "must be positive"}
	}
	if in.Email == "" && in.Phone == "" {
		return &ValidationError{Field: "email", Reason: "email or phone is required"}
	}
	if in.FirstName == "" {
		return &ValidationError{Field: "first_name", Reason: "is required"}
	}
	return nil
}

// SubmitOffer records a buyer's offer on a property. A first submission
// creates the offer; a resubmission at a higher price raises the existing
// offer in place. Equal or lower resubmissions fail with StaleOfferError.
// The returned bool reports whether a new offer row was created.
func (eng *Engine) SubmitOffer(
	ctx context.Context,
	in SubmitOfferInput,
) (*domain.Offer, bool, error) {
	if err := in.validate(); err != nil {
		return nil, false, err
	}

	property, err := eng.store.GetProperty(ctx, in.PropertyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, ErrPropertyNotFound
		}
		return nil, false, fmt.Errorf("loading property: %w", err)
	}

	buyer, err := eng.resolveBuyer(ctx, in)
	if err != nil {
		return nil, false, err
	}

	existing, err := eng.store.GetOfferByBuyerAndProperty(ctx, buyer.ID, property.ID)
	switch {
	case err == nil:
		offer, err := eng.raiseOffer(ctx, existing, in.OfferedPrice, property, buyer)
		return offer, false, err
	case errors.Is(err, pgx.ErrNoRows):
		offer, err := eng.createOffer(ctx, in, property, buyer)
		return offer, true, err
	default:
		return nil, false, fmt.Errorf("loading existing offer: %w", err)
	}
}

// TransitionOffer applies an admin decision to an offer. Transitions are
// unrestricted between statuses; history preserves the full trail either way.
func (eng *Engine) TransitionOffer(
	ctx context.Context,
	offerID string,
	status domain.OfferStatus,
	counterPrice *float64,
	updatedBy string,
) (*domain.Offer, error) {
	if !domain.ValidOfferStatus(status) {
		return nil, &ValidationError{
			Field:  "offer_status",
			Reason: fmt.Sprintf("unknown status %q", status),
		}
	}
	if status == domain.OfferCountered {
		if counterPrice == nil || *counterPrice <= 0 {
			return nil, &ValidationError{
				Field:  "counter_price",
				Reason: "a positive counter price is required for COUNTERED",
			}
		}
	} else {
		// A counter price only means something on a counter.
		counterPrice = nil
	}

	current, err := eng.store.GetOffer(ctx, offerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("loading offer: %w", err)
	}

	entry := domain.Transition{
		Timestamp:    eng.now(),
		FromStatus:   current.Status,
		ToStatus:     status,
		CounterPrice: counterPrice,
		UpdatedBy:    updatedBy,
	}

	updated, err := eng.store.UpdateOfferStatus(ctx, offerID, status, counterPrice, entry)
	if err != nil {
		return nil, fmt.Errorf("updating offer status: %w", err)
	}
	updated.Buyer = current.Buyer

	metrics.TransitionsTotal.WithLabelValues(string(status)).Inc()
	eng.log.Info("offer transitioned",
		"offer_id", offerID,
		"from", current.Status,
		"to", status,
		"updated_by", updatedBy,
	)

	eng.emitTransitionEvent(ctx, updated)

	return updated, nil
}

// ExpireStaleOffers marks pending offers older than the configured window as
// expired. Returns the number of offers expired.
func (eng *Engine) ExpireStaleOffers(ctx context.Context) (int, error) {
	start := eng.now()
	defer func() {
		metrics.ExpirySweepDuration.Observe(time.Since(start).Seconds())
	}()

	cutoff := start.Add(-eng.expireAfter)
	entry := domain.Transition{
		Timestamp:  start,
		FromStatus: domain.OfferPending,
		ToStatus:   domain.OfferExpired,
		UpdatedBy:  "system",
	}

	n, err := eng.store.ExpirePendingBefore(ctx, cutoff, entry)
	if err != nil {
		return 0, fmt.Errorf("expiring offers: %w", err)
	}

	if n > 0 {
		metrics.OffersExpiredTotal.Add(float64(n))
		eng.log.Info("expired stale offers", "count", n, "cutoff", cutoff)
		eng.events.Enqueue(notify.Event{
			Kind:         notify.EventOffersExpired,
			ExpiredCount: n,
		})
	}

	return n, nil
}

// resolveBuyer finds the buyer matching the submission's identity, creating
// one when no match exists.
func (eng *Engine) resolveBuyer(
	ctx context.Context,
	in SubmitOfferInput,
) (*domain.Buyer, error) {
	buyer, err := eng.store.GetBuyerByEmailOrPhone(ctx, in.Email, in.Phone)
	if err == nil {
		return buyer, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("looking up buyer: %w", err)
	}

	buyerType := in.BuyerType
	if buyerType == "" {
		buyerType = domain.BuyerInvestor
	}

	buyer = &domain.Buyer{
		Email:          in.Email,
		Phone:          in.Phone,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		BuyerType:      buyerType,
		PreferredAreas: in.PreferredAreas,
		Source:         in.Source,
	}
	if err := eng.store.CreateBuyer(ctx, buyer); err != nil {
		return nil, fmt.Errorf("creating buyer: %w", err)
	}

	eng.log.Info("buyer created from offer submission", "buyer_id", buyer.ID, "email", buyer.Email)
	return buyer, nil
}

// createOffer inserts a first-time offer with its threshold-resolved status.
func (eng *Engine) createOffer(
	ctx context.Context,
	in SubmitOfferInput,
	property *domain.Property,
	buyer *domain.Buyer,
) (*domain.Offer, error) {
	status := resolveStatus(in.OfferedPrice, property)

	offer := &domain.Offer{
		PropertyID:   property.ID,
		BuyerID:      buyer.ID,
		OfferedPrice: in.OfferedPrice,
		Status:       status,
	}
	if err := eng.store.CreateOffer(ctx, offer); err != nil {
		return nil, fmt.Errorf("creating offer: %w", err)
	}
	offer.Buyer = &domain.BuyerSummary{
		ID:        buyer.ID,
		FirstName: buyer.FirstName,
		LastName:  buyer.LastName,
		Email:     buyer.Email,
		Phone:     buyer.Phone,
	}

	metrics.OffersSubmittedTotal.WithLabelValues(string(status)).Inc()
	eng.log.Info("offer created",
		"offer_id", offer.ID,
		"property_id", property.ID,
		"buyer_id", buyer.ID,
		"price", in.OfferedPrice,
		"status", status,
	)

	eng.events.Enqueue(notify.Event{
		Kind:          submissionEventKind(status),
		Offer:         *offer,
		BuyerName:     buyer.FullName(),
		PropertyTitle: property.Title,
	})

	return offer, nil
}

// raiseOffer merges a resubmission into the buyer's existing offer. The
// update is conditional on the price the submission raced against; if another
// raise lands first, the offer is re-read and the comparison re-run once.
func (eng *Engine) raiseOffer(
	ctx context.Context,
	existing *domain.Offer,
	newPrice float64,
	property *domain.Property,
	buyer *domain.Buyer,
) (*domain.Offer, error) {
	for attempt := 0; attempt < 2; attempt++ {
		if newPrice <= existing.OfferedPrice {
			metrics.StaleOfferConflictsTotal.Inc()
			return nil, &StaleOfferError{Existing: existing}
		}

		status := resolveStatus(newPrice, property)
		entry := domain.Transition{
			Timestamp:  eng.now(),
			FromStatus: existing.Status,
			ToStatus:   status,
			UpdatedBy:  "buyer",
		}

		ok, err := eng.store.RaiseOffer(ctx, existing.ID, existing.OfferedPrice, newPrice, status, entry)
		if err != nil {
			return nil, fmt.Errorf("raising offer: %w", err)
		}
		if !ok {
			// Lost the race; reload and re-evaluate against the new price.
			existing, err = eng.store.GetOffer(ctx, existing.ID)
			if err != nil {
				return nil, fmt.Errorf("reloading offer after conflict: %w", err)
			}
			continue
		}

		updated, err := eng.store.GetOffer(ctx, existing.ID)
		if err != nil {
			return nil, fmt.Errorf("reloading raised offer: %w", err)
		}

		metrics.OffersRaisedTotal.Inc()
		metrics.OffersSubmittedTotal.WithLabelValues(string(status)).Inc()
		eng.log.Info("offer raised",
			"offer_id", updated.ID,
			"previous_price", existing.OfferedPrice,
			"price", newPrice,
			"status", status,
		)

		kind := notify.EventOfferRaised
		if status == domain.OfferAccepted {
			kind = notify.EventOfferAccepted
		} else if status == domain.OfferRejected {
			kind = notify.EventOfferBelowMinimum
		}
		eng.events.Enqueue(notify.Event{
			Kind:          kind,
			Offer:         *updated,
			BuyerName:     buyer.FullName(),
			PropertyTitle: property.Title,
		})

		return updated, nil
	}

	metrics.StaleOfferConflictsTotal.Inc()
	return nil, &StaleOfferError{Existing: existing}
}

// emitTransitionEvent looks up display context for an admin transition and
// queues the notification. Lookup failures only cost the notification.
func (eng *Engine) emitTransitionEvent(ctx context.Context, offer *domain.Offer) {
	kind := notify.EventKind("")
	switch offer.Status {
	case domain.OfferAccepted:
		kind = notify.EventOfferAccepted
	case domain.OfferRejected:
		kind = notify.EventOfferRejected
	case domain.OfferCountered:
		kind = notify.EventOfferCountered
	default:
		return
	}

	event := notify.Event{Kind: kind, Offer: *offer}
	if offer.Buyer != nil {
		event.BuyerName = offer.Buyer.FirstName + " " + offer.Buyer.LastName
	}
	if property, err := eng.store.GetProperty(ctx, offer.PropertyID); err == nil {
		event.PropertyTitle = property.Title
	}

	eng.events.Enqueue(event)
}

// resolveStatus applies the price threshold rule: meeting the asking price
// auto-accepts, undercutting a configured minimum auto-rejects, anything in
// between awaits review.
func resolveStatus(price float64, property *domain.Property) domain.OfferStatus {
	if price >= property.AskingPrice {
		return domain.OfferAccepted
	}
	if property.MinPrice != nil && price < *property.MinPrice {
		return domain.OfferRejected
	}
	return domain.OfferPending
}

func submissionEventKind(status domain.OfferStatus) notify.EventKind {
	switch status {
	case domain.OfferAccepted:
		return notify.EventOfferAccepted
	case domain.OfferRejected:
		return notify.EventOfferBelowMinimum
	default:
		return notify.EventOfferSubmitted
	}
}
