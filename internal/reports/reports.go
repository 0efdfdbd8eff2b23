// Package reports assembles aggregate views over offers and buyers.
package reports

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/offerdesk/offerdesk/internal/store"
	domain "github.com/offerdesk/offerdesk/pkg/types"
)

const (
	trendWindowDays  = 30
	topPropertyCount = 5

	// unknownPropertyTitle labels offers whose property this service only
	// knows by ID.
	unknownPropertyTitle = "Unknown Property"
)

// Service computes offer and buyer statistics from the store.
type Service struct {
	store store.Store
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a reporting service.
func NewService(s store.Store, opts ...Option) *Service {
	svc := &Service{
		store: s,
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// OfferStats assembles the aggregate offer report: totals by status, a
// 30-day daily trend (oldest day first), and the five most-bid properties.
func (s *Service) OfferStats(ctx context.Context) (*domain.OfferStats, error) {
	byStatus, err := s.store.CountOffersByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting offers by status: %w", err)
	}

	total := 0
	for _, count := range byStatus {
		total += count
	}

	since := s.now().AddDate(0, 0, -trendWindowDays)
	trend, err := s.store.TrendSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("loading offer trend: %w", err)
	}

	top, err := s.topProperties(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.OfferStats{
		Total:         total,
		ByStatus:      byStatus,
		Trend:         trend,
		TopProperties: top,
	}, nil
}

// BuyerStats returns the aggregate buyer report.
func (s *Service) BuyerStats(ctx context.Context) (*domain.BuyerStats, error) {
	stats, err := s.store.GetBuyerStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading buyer stats: %w", err)
	}
	return stats, nil
}

// topProperties ranks properties by offer count and decorates each entry
// with its summary. Properties the store cannot resolve get a placeholder.
func (s *Service) topProperties(ctx context.Context) ([]domain.PropertyOfferCount, error) {
	top, err := s.store.TopProperties(ctx, topPropertyCount)
	if err != nil {
		return nil, fmt.Errorf("ranking properties: %w", err)
	}
	if len(top) == 0 {
		return top, nil
	}

	ids := make([]string, len(top))
	for i, entry := range top {
		ids[i] = entry.PropertyID
	}

	summaries, err := s.store.ListPropertySummaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading property summaries: %w", err)
	}

	for i := range top {
		if summary, ok := summaries[top[i].PropertyID]; ok {
			top[i].Property = &summary
			continue
		}
		top[i].Property = &domain.PropertySummary{
			ID:    top[i].PropertyID,
			Title: unknownPropertyTitle,
		}
	}

	return top, nil
}
