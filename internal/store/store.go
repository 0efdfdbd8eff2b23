// Package store defines the datastore abstraction for offerdesk.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	domain "github.com/offerdesk/offerdesk/pkg/types"
)

// OfferQuery defines optional filters for offer list queries.
type OfferQuery struct {
	// Status filters by offer status. Nil or ALL means no status filter.
	Status *domain.OfferStatus
	// PropertyID filters to offers on a single property.
	PropertyID *string
	// StartDate and EndDate bound the offer timestamp. EndDate is pushed to
	// the end of its calendar day so a same-day range matches.
	StartDate *time.Time
	EndDate   *time.Time
	// Search matches case-insensitively against buyer first name, last name,
	// email, or phone.
	Search string
	Page   int // 1-indexed, default 1
	Limit  int // default 20
}

// Store defines all data access operations for offerdesk.
type Store interface {
	// Buyers
	CreateBuyer(ctx context.Context, b *domain.Buyer) error
	GetBuyer(ctx context.Context, id string) (*domain.Buyer, error)
	GetBuyerByEmailOrPhone(ctx context.Context, email, phone string) (*domain.Buyer, error)
	GetBuyerByExternalID(ctx context.Context, externalID string) (*domain.Buyer, error)
	ListBuyers(ctx context.Context, page, limit int) ([]domain.Buyer, int, error)
	ListBuyersByArea(ctx context.Context, areaID string) ([]domain.Buyer, error)
	ListBuyersByIDs(ctx context.Context, ids []string, includeUnsubscribed bool) ([]domain.Buyer, error)
	UpdateBuyer(ctx context.Context, b *domain.Buyer) error
	DeleteBuyer(ctx context.Context, id string) error
	GetBuyerStats(ctx context.Context) (*domain.BuyerStats, error)

	// Properties
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	UpsertProperty(ctx context.Context, p *domain.Property) error
	ListPropertySummaries(ctx context.Context, ids []string) (map[string]domain.PropertySummary, error)

	// Offers
	CreateOffer(ctx context.Context, o *domain.Offer) error
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)
	GetOfferByBuyerAndProperty(ctx context.Context, buyerID, propertyID string) (*domain.Offer, error)
	// RaiseOffer updates price and status only if the stored price still
	// equals prevPrice. Returns false when another writer got there first.
	RaiseOffer(ctx context.Context, id string, prevPrice, newPrice float64, status domain.OfferStatus, entry domain.Transition) (bool, error)
	UpdateOfferStatus(ctx context.Context, id string, status domain.OfferStatus, counterPrice *float64, entry domain.Transition) (*domain.Offer, error)
	ListOffersByProperty(ctx context.Context, propertyID string) ([]domain.Offer, error)
	ListOffersByBuyer(ctx context.Context, buyerID string) ([]domain.Offer, error)
	ListOffers(ctx context.Context, opts *OfferQuery) ([]domain.Offer, int, error)
	ExpirePendingBefore(ctx context.Context, cutoff time.Time, entry domain.Transition) (int, error)

	// Reporting
	CountOffersByStatus(ctx context.Context) (map[domain.OfferStatus]int, error)
	TrendSince(ctx context.Context, since time.Time) ([]domain.TrendPoint, error)
	TopProperties(ctx context.Context, limit int) ([]domain.PropertyOfferCount, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
