// Package domain defines the core business types for the offer management
// service.
package domain

import (
	"math"
	"strings"
	"time"
)

// BuyerType categorizes a buyer's purchase intent.
type BuyerType string

// Buyer type constants.
const (
	BuyerInvestor      BuyerType = "investor"
	BuyerOwnerOccupant BuyerType = "owner_occupant"
)

// SourceVIP is the provenance tag stamped on buyers created or promoted
// through the VIP endpoint. VIP counting in buyer stats matches on it.
const SourceVIP = "VIP Buyers List"

// OfferStatus represents the lifecycle state of an offer.
type OfferStatus string

// Offer status constants.
const (
	OfferPending   OfferStatus = "PENDING"
	OfferAccepted  OfferStatus = "ACCEPTED"
	OfferRejected  OfferStatus = "REJECTED"
	OfferCountered OfferStatus = "COUNTERED"
	OfferExpired   OfferStatus = "EXPIRED"
)

// AllOfferStatuses lists every valid offer status.
var AllOfferStatuses = []OfferStatus{
	OfferPending, OfferAccepted, OfferRejected, OfferCountered, OfferExpired,
}

// ValidOfferStatus reports whether s is a recognized offer status.
func ValidOfferStatus(s OfferStatus) bool {
	switch s {
	case OfferPending, OfferAccepted, OfferRejected, OfferCountered, OfferExpired:
		return true
	default:
		return false
	}
}

// NormalizeEmail lower-cases and trims an email address. Buyer identity
// matching always goes through this so "Jane@X.com" and "jane@x.com"
// resolve to the same record.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Buyer is an identity record keyed by email or phone.
type Buyer struct {
	ID             string    `json:"id"                    db:"id"`
	Email          string    `json:"email"                 db:"email"`
	Phone          string    `json:"phone"                 db:"phone"`
	FirstName      string    `json:"first_name"            db:"first_name"`
	LastName       string    `json:"last_name"             db:"last_name"`
	BuyerType      BuyerType `json:"buyer_type"            db:"buyer_type"`
	PreferredAreas []string  `json:"preferred_areas"       db:"preferred_areas"`
	Source         string    `json:"source,omitempty"      db:"source"`
	ExternalID     string    `json:"external_id,omitempty" db:"external_id"`
	Unsubscribed   bool      `json:"unsubscribed"          db:"unsubscribed"`
	CreatedAt      time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"            db:"updated_at"`

	// Offers is populated on detail reads only.
	Offers []Offer `json:"offers,omitempty"`
}

// FullName returns the buyer's display name.
func (b *Buyer) FullName() string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

// BuyerSummary is the subset of buyer fields embedded in offer reads.
type BuyerSummary struct {
	ID        string `json:"id"         db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name"  db:"last_name"`
	Email     string `json:"email"      db:"email"`
	Phone     string `json:"phone"      db:"phone"`
}

// Property is a read-only reference into the listings subsystem. The offer
// engine only consults AskingPrice and MinPrice.
type Property struct {
	ID            string    `json:"id"                  db:"id"`
	Title         string    `json:"title"               db:"title"`
	StreetAddress string    `json:"street_address"      db:"street_address"`
	City          string    `json:"city"                db:"city"`
	State         string    `json:"state"               db:"state"`
	Zip           string    `json:"zip,omitempty"       db:"zip"`
	AskingPrice   float64   `json:"asking_price"        db:"asking_price"`
	MinPrice      *float64  `json:"min_price,omitempty" db:"min_price"`
	UpdatedAt     time.Time `json:"updated_at"          db:"updated_at"`
}

// PropertySummary is the subset of property fields used in reports.
type PropertySummary struct {
	ID            string `json:"id"             db:"id"`
	Title         string `json:"title"          db:"title"`
	StreetAddress string `json:"street_address" db:"street_address"`
	City          string `json:"city"           db:"city"`
	State         string `json:"state"          db:"state"`
}

// Transition is one entry in an offer's append-only modification history.
type Transition struct {
	Timestamp    time.Time   `json:"timestamp"`
	FromStatus   OfferStatus `json:"from_status"`
	ToStatus     OfferStatus `json:"to_status"`
	CounterPrice *float64    `json:"counter_price,omitempty"`
	UpdatedBy    string      `json:"updated_by"`
}

// Offer is a buyer's bid on a property. Exactly one offer exists per
// (buyer, property) pair; resubmissions update the row in place.
type Offer struct {
	ID           string       `json:"id"                      db:"id"`
	PropertyID   string       `json:"property_id"             db:"property_id"`
	BuyerID      string       `json:"buyer_id"                db:"buyer_id"`
	OfferedPrice float64      `json:"offered_price"           db:"offered_price"`
	Status       OfferStatus  `json:"offer_status"            db:"offer_status"`
	CounterPrice *float64     `json:"counter_price,omitempty" db:"counter_price"`
	History      []Transition `json:"modification_history"    db:"modification_history"`
	Timestamp    time.Time    `json:"timestamp"               db:"timestamp"`
	CreatedAt    time.Time    `json:"created_at"              db:"created_at"`

	// Buyer is populated on reads that join the buyer row.
	Buyer *BuyerSummary `json:"buyer,omitempty"`
}

// TrendPoint aggregates offer counts for one calendar day.
type TrendPoint struct {
	Date     string              `json:"date"` // YYYY-MM-DD
	Total    int                 `json:"total"`
	ByStatus map[OfferStatus]int `json:"by_status"`
}

// PropertyOfferCount pairs a property with its offer count for ranking.
type PropertyOfferCount struct {
	PropertyID string           `json:"property_id"`
	Count      int              `json:"count"`
	Property   *PropertySummary `json:"property,omitempty"`
}

// OfferStats is the aggregate report over all offers.
type OfferStats struct {
	Total         int                  `json:"total"`
	ByStatus      map[OfferStatus]int  `json:"by_status"`
	Trend         []TrendPoint         `json:"trend"`
	TopProperties []PropertyOfferCount `json:"top_properties"`
}

// BuyerStats is the aggregate report over all buyers.
type BuyerStats struct {
	TotalCount    int               `json:"total_count"`
	VIPCount      int               `json:"vip_count"`
	ByArea        map[string]int    `json:"by_area"`
	ByType        map[BuyerType]int `json:"by_type"`
	BySource      map[string]int    `json:"by_source"`
	MonthlyGrowth map[string]int    `json:"monthly_growth"` // YYYY-MM -> new buyers
}

// Pagination describes a page of results. Pages is ceil(Total/Limit).
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPagination computes page metadata for a total row count.
func NewPagination(total, page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
}
