package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/offerdesk/offerdesk/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateBuyer inserts a new buyer.
func (s *PostgresStore) CreateBuyer(ctx context.Context, b *domain.Buyer) error {
	args := pgx.NamedArgs{
		"email":           domain.NormalizeEmail(b.Email),
		"phone":           b.Phone,
		"first_name":      b.FirstName,
		"last_name":       b.LastName,
		"buyer_type":      string(b.BuyerType),
		"preferred_areas": b.PreferredAreas,
		"source":          b.Source,
		"external_id":     b.ExternalID,
		"unsubscribed":    b.Unsubscribed,
	}

	return s.pool.QueryRow(ctx, queryCreateBuyer, args).Scan(
		&b.ID, &b.CreatedAt, &b.UpdatedAt,
	)
}

// GetBuyer retrieves a buyer by its UUID.
func (s *PostgresStore) GetBuyer(ctx context.Context, id string) (*domain.Buyer, error) {
	b := &domain.Buyer{}
	if err := scanBuyer(s.pool.QueryRow(ctx, queryGetBuyer, id), b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBuyerByEmailOrPhone retrieves a buyer matching the given email or phone.
// Empty strings never match.
func (s *PostgresStore) GetBuyerByEmailOrPhone(
	ctx context.Context,
	email, phone string,
) (*domain.Buyer, error) {
	b := &domain.Buyer{}
	err := scanBuyer(
		s.pool.QueryRow(ctx, queryGetBuyerByEmailOrPhone, domain.NormalizeEmail(email), phone), b,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetBuyerByExternalID retrieves a buyer by its external system ID.
func (s *PostgresStore) GetBuyerByExternalID(
	ctx context.Context,
	externalID string,
) (*domain.Buyer, error) {
	b := &domain.Buyer{}
	if err := scanBuyer(s.pool.QueryRow(ctx, queryGetBuyerByExternalID, externalID), b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListBuyers returns a page of buyers, newest first, plus the total count.
func (s *PostgresStore) ListBuyers(
	ctx context.Context,
	page, limit int,
) ([]domain.Buyer, int, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var total int
	if err := s.pool.QueryRow(ctx, queryCountBuyers).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting buyers: %w", err)
	}

	buyers, err := s.queryBuyers(ctx, queryListBuyers, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return buyers, total, nil
}

// ListBuyersByArea returns all buyers whose preferred areas include areaID.
func (s *PostgresStore) ListBuyersByArea(
	ctx context.Context,
	areaID string,
) ([]domain.Buyer, error) {
	return s.queryBuyers(ctx, queryListBuyersByArea, areaID)
}

// ListBuyersByIDs returns the buyers with the given IDs. Unsubscribed buyers
// are skipped unless includeUnsubscribed is set.
func (s *PostgresStore) ListBuyersByIDs(
	ctx context.Context,
	ids []string,
	includeUnsubscribed bool,
) ([]domain.Buyer, error) {
	query := queryListBuyersByIDsSubscribed
	if includeUnsubscribed {
		query = queryListBuyersByIDs
	}
	return s.queryBuyers(ctx, query, ids)
}

// UpdateBuyer updates an existing buyer.
func (s *PostgresStore) UpdateBuyer(ctx context.Context, b *domain.Buyer) error {
	args := pgx.NamedArgs{
		"id":              b.ID,
		"email":           domain.NormalizeEmail(b.Email),
		"phone":           b.Phone,
		"first_name":      b.FirstName,
		"last_name":       b.LastName,
		"buyer_type":      string(b.BuyerType),
		"preferred_areas": b.PreferredAreas,
		"source":          b.Source,
		"external_id":     b.ExternalID,
		"unsubscribed":    b.Unsubscribed,
	}

	return s.pool.QueryRow(ctx, queryUpdateBuyer, args).Scan(&b.UpdatedAt)
}

// DeleteBuyer removes a buyer. Its offers go with it via ON DELETE CASCADE.
func (s *PostgresStore) DeleteBuyer(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteBuyer, id)
	if err != nil {
		return fmt.Errorf("deleting buyer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetBuyerStats assembles the aggregate buyer report.
func (s *PostgresStore) GetBuyerStats(ctx context.Context) (*domain.BuyerStats, error) {
	stats := &domain.BuyerStats{
		ByArea:        make(map[string]int),
		ByType:        make(map[domain.BuyerType]int),
		BySource:      make(map[string]int),
		MonthlyGrowth: make(map[string]int),
	}

	if err := s.pool.QueryRow(ctx, queryCountBuyers).Scan(&stats.TotalCount); err != nil {
		return nil, fmt.Errorf("counting buyers: %w", err)
	}
	if err := s.pool.QueryRow(ctx, queryCountBuyersVIP, domain.SourceVIP).Scan(&stats.VIPCount); err != nil {
		return nil, fmt.Errorf("counting vip buyers: %w", err)
	}

	if err := s.scanCounts(ctx, queryCountBuyersByArea, func(key string, count int) {
		stats.ByArea[key] = count
	}); err != nil {
		return nil, fmt.Errorf("counting buyers by area: %w", err)
	}
	if err := s.scanCounts(ctx, queryCountBuyersByType, func(key string, count int) {
		stats.ByType[domain.BuyerType(key)] = count
	}); err != nil {
		return nil, fmt.Errorf("counting buyers by type: %w", err)
	}
	if err := s.scanCounts(ctx, queryCountBuyersBySource, func(key string, count int) {
		stats.BySource[key] = count
	}); err != nil {
		return nil, fmt.Errorf("counting buyers by source: %w", err)
	}

	rows, err := s.pool.Query(ctx, queryBuyerMonthlyGrowth)
	if err != nil {
		return nil, fmt.Errorf("querying monthly growth: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var month string
		var count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, fmt.Errorf("scanning monthly growth: %w", err)
		}
		stats.MonthlyGrowth[month] = count
	}

	return stats, rows.Err()
}

// GetProperty retrieves a property by its ID.
func (s *PostgresStore) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	p := &domain.Property{}
	err := s.pool.QueryRow(ctx, queryGetProperty, id).Scan(
		&p.ID, &p.Title, &p.StreetAddress, &p.City, &p.State, &p.Zip,
		&p.AskingPrice, &p.MinPrice, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpsertProperty inserts or updates a property by its ID.
func (s *PostgresStore) UpsertProperty(ctx context.Context, p *domain.Property) error {
	args := pgx.NamedArgs{
		"id":             p.ID,
		"title":          p.Title,
		"street_address": p.StreetAddress,
		"city":           p.City,
		"state":          p.State,
		"zip":            p.Zip,
		"asking_price":   p.AskingPrice,
		"min_price":      p.MinPrice,
	}

	return s.pool.QueryRow(ctx, queryUpsertProperty, args).Scan(&p.UpdatedAt)
}

// ListPropertySummaries returns summaries for the given property IDs, keyed
// by ID. Missing properties are simply absent from the map.
func (s *PostgresStore) ListPropertySummaries(
	ctx context.Context,
	ids []string,
) (map[string]domain.PropertySummary, error) {
	rows, err := s.pool.Query(ctx, queryListPropertySummaries, ids)
	if err != nil {
		return nil, fmt.Errorf("querying property summaries: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.PropertySummary)
	for rows.Next() {
		var p domain.PropertySummary
		if err := rows.Scan(&p.ID, &p.Title, &p.StreetAddress, &p.City, &p.State); err != nil {
			return nil, fmt.Errorf("scanning property summary: %w", err)
		}
		result[p.ID] = p
	}

	return result, rows.Err()
}

// CreateOffer inserts a new offer.
func (s *PostgresStore) CreateOffer(ctx context.Context, o *domain.Offer) error {
	historyJSON, err := marshalHistory(o.History)
	if err != nil {
		return err
	}

	args := pgx.NamedArgs{
		"property_id":          o.PropertyID,
		"buyer_id":             o.BuyerID,
		"offered_price":        o.OfferedPrice,
		"status":               string(o.Status),
		"counter_price":        o.CounterPrice,
		"modification_history": historyJSON,
	}

	return s.pool.QueryRow(ctx, queryCreateOffer, args).Scan(
		&o.ID, &o.Timestamp, &o.CreatedAt,
	)
}

// GetOffer retrieves an offer by its UUID, with the buyer summary joined.
func (s *PostgresStore) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	o := &domain.Offer{}
	if err := scanOffer(s.pool.QueryRow(ctx, queryGetOffer, id), o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetOfferByBuyerAndProperty retrieves the single offer for a (buyer, property) pair.
func (s *PostgresStore) GetOfferByBuyerAndProperty(
	ctx context.Context,
	buyerID, propertyID string,
) (*domain.Offer, error) {
	o := &domain.Offer{}
	err := scanOffer(s.pool.QueryRow(ctx, queryGetOfferByBuyerAndProperty, buyerID, propertyID), o)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// RaiseOffer conditionally updates an offer's price and status. The update
// only applies if the stored price still equals prevPrice; it returns false
// when a concurrent writer changed the row first.
func (s *PostgresStore) RaiseOffer(
	ctx context.Context,
	id string,
	prevPrice, newPrice float64,
	status domain.OfferStatus,
	entry domain.Transition,
) (bool, error) {
	entryJSON, err := marshalHistoryEntry(entry)
	if err != nil {
		return false, err
	}

	tag, err := s.pool.Exec(ctx, queryRaiseOffer, id, prevPrice, newPrice, string(status), entryJSON)
	if err != nil {
		return false, fmt.Errorf("raising offer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateOfferStatus transitions an offer to a new status, recording the
// transition in the modification history, and returns the updated offer.
func (s *PostgresStore) UpdateOfferStatus(
	ctx context.Context,
	id string,
	status domain.OfferStatus,
	counterPrice *float64,
	entry domain.Transition,
) (*domain.Offer, error) {
	entryJSON, err := marshalHistoryEntry(entry)
	if err != nil {
		return nil, err
	}

	o := &domain.Offer{}
	var historyJSON []byte
	err = s.pool.QueryRow(ctx, queryUpdateOfferStatus, id, string(status), counterPrice, entryJSON).Scan(
		&o.ID, &o.PropertyID, &o.BuyerID, &o.OfferedPrice, &o.Status,
		&o.CounterPrice, &historyJSON, &o.Timestamp, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(historyJSON, &o.History); err != nil {
		return nil, fmt.Errorf("unmarshaling offer history: %w", err)
	}

	return o, nil
}

// ListOffersByProperty returns all offers on a property, newest first.
func (s *PostgresStore) ListOffersByProperty(
	ctx context.Context,
	propertyID string,
) ([]domain.Offer, error) {
	return s.queryOffers(ctx, queryListOffersByProperty, propertyID)
}

// ListOffersByBuyer returns all offers made by a buyer, newest first.
func (s *PostgresStore) ListOffersByBuyer(
	ctx context.Context,
	buyerID string,
) ([]domain.Offer, error) {
	return s.queryOffers(ctx, queryListOffersByBuyer, buyerID)
}

// ListOffers queries offers with optional filters, returning results and
// total count.
func (s *PostgresStore) ListOffers(
	ctx context.Context,
	opts *OfferQuery,
) ([]domain.Offer, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting offers: %w", err)
	}

	offers, err := s.queryOffers(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}

	return offers, total, nil
}

// ExpirePendingBefore marks all pending offers last modified before cutoff as
// expired. Returns the number of offers expired.
func (s *PostgresStore) ExpirePendingBefore(
	ctx context.Context,
	cutoff time.Time,
	entry domain.Transition,
) (int, error) {
	entryJSON, err := marshalHistoryEntry(entry)
	if err != nil {
		return 0, err
	}

	tag, err := s.pool.Exec(ctx, queryExpirePendingBefore, cutoff, entryJSON)
	if err != nil {
		return 0, fmt.Errorf("expiring pending offers: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// CountOffersByStatus returns offer counts grouped by status.
func (s *PostgresStore) CountOffersByStatus(
	ctx context.Context,
) (map[domain.OfferStatus]int, error) {
	result := make(map[domain.OfferStatus]int)
	err := s.scanCounts(ctx, queryCountOffersByStatus, func(key string, count int) {
		result[domain.OfferStatus(key)] = count
	})
	if err != nil {
		return nil, fmt.Errorf("counting offers by status: %w", err)
	}
	return result, nil
}

// TrendSince returns daily offer counts from since onward, oldest day first.
func (s *PostgresStore) TrendSince(
	ctx context.Context,
	since time.Time,
) ([]domain.TrendPoint, error) {
	rows, err := s.pool.Query(ctx, queryTrendSince, since)
	if err != nil {
		return nil, fmt.Errorf("querying offer trend: %w", err)
	}
	defer rows.Close()

	// Rows arrive ordered by day; fold (day, status, count) into points.
	var points []domain.TrendPoint
	for rows.Next() {
		var day, status string
		var count int
		if err := rows.Scan(&day, &status, &count); err != nil {
			return nil, fmt.Errorf("scanning trend row: %w", err)
		}

		if len(points) == 0 || points[len(points)-1].Date != day {
			points = append(points, domain.TrendPoint{
				Date:     day,
				ByStatus: make(map[domain.OfferStatus]int),
			})
		}
		p := &points[len(points)-1]
		p.Total += count
		p.ByStatus[domain.OfferStatus(status)] = count
	}

	return points, rows.Err()
}

// TopProperties returns the properties with the most offers, highest first.
func (s *PostgresStore) TopProperties(
	ctx context.Context,
	limit int,
) ([]domain.PropertyOfferCount, error) {
	rows, err := s.pool.Query(ctx, queryTopProperties, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top properties: %w", err)
	}
	defer rows.Close()

	var top []domain.PropertyOfferCount
	for rows.Next() {
		var p domain.PropertyOfferCount
		if err := rows.Scan(&p.PropertyID, &p.Count); err != nil {
			return nil, fmt.Errorf("scanning top property: %w", err)
		}
		top = append(top, p)
	}

	return top, rows.Err()
}

// queryBuyers is a helper for buyer list queries.
func (s *PostgresStore) queryBuyers(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Buyer, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying buyers: %w", err)
	}
	defer rows.Close()

	var buyers []domain.Buyer
	for rows.Next() {
		var b domain.Buyer
		if err := scanBuyer(rows, &b); err != nil {
			return nil, fmt.Errorf("scanning buyer: %w", err)
		}
		buyers = append(buyers, b)
	}

	return buyers, rows.Err()
}

// queryOffers is a helper for offer list queries.
func (s *PostgresStore) queryOffers(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Offer, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var o domain.Offer
		if err := scanOffer(rows, &o); err != nil {
			return nil, fmt.Errorf("scanning offer: %w", err)
		}
		offers = append(offers, o)
	}

	return offers, rows.Err()
}

// scanCounts runs a (key, count) aggregate query and feeds each row to fn.
func (s *PostgresStore) scanCounts(
	ctx context.Context,
	query string,
	fn func(key string, count int),
) error {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		fn(key, count)
	}

	return rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanBuyer scans a full buyer row.
func scanBuyer(row scannable, b *domain.Buyer) error {
	return row.Scan(
		&b.ID, &b.Email, &b.Phone, &b.FirstName, &b.LastName, &b.BuyerType,
		&b.PreferredAreas, &b.Source, &b.ExternalID, &b.Unsubscribed,
		&b.CreatedAt, &b.UpdatedAt,
	)
}

// scanOffer scans an offer row joined with its buyer summary.
func scanOffer(row scannable, o *domain.Offer) error {
	var historyJSON []byte
	buyer := &domain.BuyerSummary{}

	if err := row.Scan(
		&o.ID, &o.PropertyID, &o.BuyerID, &o.OfferedPrice, &o.Status,
		&o.CounterPrice, &historyJSON, &o.Timestamp, &o.CreatedAt,
		&buyer.FirstName, &buyer.LastName, &buyer.Email, &buyer.Phone,
	); err != nil {
		return err
	}

	if err := json.Unmarshal(historyJSON, &o.History); err != nil {
		return fmt.Errorf("unmarshaling offer history: %w", err)
	}

	buyer.ID = o.BuyerID
	o.Buyer = buyer
	return nil
}

// marshalHistory serializes a full modification history for insert.
func marshalHistory(history []domain.Transition) ([]byte, error) {
	if history == nil {
		history = []domain.Transition{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshaling offer history: %w", err)
	}
	return data, nil
}

// marshalHistoryEntry serializes a single transition as a one-element JSON
// array so it can be appended to a jsonb history column with ||.
func marshalHistoryEntry(entry domain.Transition) ([]byte, error) {
	data, err := json.Marshal([]domain.Transition{entry})
	if err != nil {
		return nil, fmt.Errorf("marshaling history entry: %w", err)
	}
	return data, nil
}
