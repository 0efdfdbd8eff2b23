package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/offerdesk/offerdesk/internal/store/mocks"
	domain "github.com/offerdesk/offerdesk/pkg/types"
)

func TestOfferStats(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		CountOffersByStatus(mock.Anything).
		Return(map[domain.OfferStatus]int{
			domain.OfferPending:  5,
			domain.OfferAccepted: 2,
			domain.OfferRejected: 3,
		}, nil)
	ms.EXPECT().
		TrendSince(mock.Anything, now.AddDate(0, 0, -30)).
		Return([]domain.TrendPoint{
			{Date: "2026-08-29", Total: 4, ByStatus: map[domain.OfferStatus]int{domain.OfferPending: 4}},
			{Date: "2026-08-30", Total: 6, ByStatus: map[domain.OfferStatus]int{domain.OfferPending: 6}},
		}, nil)
	ms.EXPECT().
		TopProperties(mock.Anything, 5).
		Return([]domain.PropertyOfferCount{
			{PropertyID: "prop-1", Count: 7},
			{PropertyID: "prop-gone", Count: 3},
		}, nil)
	ms.EXPECT().
		ListPropertySummaries(mock.Anything, []string{"prop-1", "prop-gone"}).
		Return(map[string]domain.PropertySummary{
			"prop-1": {ID: "prop-1", Title: "3BR ranch", City: "Springfield"},
		}, nil)

	svc := NewService(ms, WithClock(func() time.Time { return now }))

	stats, err := svc.OfferStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, stats.Total, "total must equal the sum of status counts")
	assert.Equal(t, 5, stats.ByStatus[domain.OfferPending])

	require.Len(t, stats.Trend, 2)
	assert.Equal(t, "2026-08-29", stats.Trend[0].Date, "trend must be oldest first")

	require.Len(t, stats.TopProperties, 2)
	require.NotNil(t, stats.TopProperties[0].Property)
	assert.Equal(t, "3BR ranch", stats.TopProperties[0].Property.Title)
	require.NotNil(t, stats.TopProperties[1].Property)
	assert.Equal(t, "Unknown Property", stats.TopProperties[1].Property.Title)
	assert.Equal(t, "prop-gone", stats.TopProperties[1].Property.ID)
}

func TestOfferStats_EmptyStore(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().CountOffersByStatus(mock.Anything).Return(map[domain.OfferStatus]int{}, nil)
	ms.EXPECT().TrendSince(mock.Anything, mock.Anything).Return(nil, nil)
	ms.EXPECT().TopProperties(mock.Anything, 5).Return(nil, nil)

	svc := NewService(ms)

	stats, err := svc.OfferStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.Trend)
	assert.Empty(t, stats.TopProperties)
}

func TestOfferStats_StoreErrors(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().CountOffersByStatus(mock.Anything).Return(nil, errors.New("db down"))

	svc := NewService(ms)
	_, err := svc.OfferStats(context.Background())
	assert.ErrorContains(t, err, "counting offers by status")
}

func TestBuyerStats(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetBuyerStats(mock.Anything).
		Return(&domain.BuyerStats{
			TotalCount: 42,
			VIPCount:   4,
			ByType:     map[domain.BuyerType]int{domain.BuyerInvestor: 30, domain.BuyerOwnerOccupant: 12},
		}, nil)

	svc := NewService(ms)

	stats, err := svc.BuyerStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalCount)
	assert.Equal(t, 4, stats.VIPCount)
	assert.Equal(t, 30, stats.ByType[domain.BuyerInvestor])
}
