package handlers_test

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/offerdesk/offerdesk/internal/store"
	storeMocks "github.com/offerdesk/offerdesk/internal/store/mocks"
	domain "github.com/offerdesk/offerdesk/pkg/types"
)

func TestExportOffers(t *testing.T) {
	t.Parallel()

	counter := 290000.0
	ts := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	offers := []domain.Offer{
		{
			ID:           "offer-1",
			PropertyID:   "prop-1",
			OfferedPrice: 275000,
			Status:       domain.OfferCountered,
			CounterPrice: &counter,
			Timestamp:    ts,
			Buyer: &domain.BuyerSummary{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane@example.com",
				Phone:     "555-0101",
			},
		},
		{
			ID:           "offer-2",
			PropertyID:   "prop-2",
			OfferedPrice: 180000,
			Status:       domain.OfferPending,
			Timestamp:    ts,
		},
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListOffers(mock.Anything, mock.MatchedBy(func(q *store.OfferQuery) bool {
			return q.Page == 1 && q.Limit == 200
		})).
		Return(offers, 2, nil).
		Once()

	h := newOffersHandler(ms)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers/export", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Export(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "offers.csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "offer_id", records[0][0])
	assert.Equal(t, []string{
		"offer-1", "prop-1", "Jane Doe", "jane@example.com", "555-0101",
		"275000.00", "COUNTERED", "290000.00", "2026-08-15T10:30:00Z",
	}, records[1])
	assert.Equal(t, "offer-2", records[2][0])
	assert.Empty(t, records[2][7])
}

func TestExportOffers_Paginates(t *testing.T) {
	t.Parallel()

	page1 := make([]domain.Offer, 200)
	for i := range page1 {
		page1[i] = domain.Offer{ID: "offer-a", Status: domain.OfferPending}
	}
	page2 := []domain.Offer{{ID: "offer-b", Status: domain.OfferPending}}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListOffers(mock.Anything, mock.MatchedBy(func(q *store.OfferQuery) bool {
			return q.Page == 1
		})).
		Return(page1, 201, nil).
		Once()
	ms.EXPECT().
		ListOffers(mock.Anything, mock.MatchedBy(func(q *store.OfferQuery) bool {
			return q.Page == 2
		})).
		Return(page2, 201, nil).
		Once()

	h := newOffersHandler(ms)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers/export", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Export(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	lines := strings.Count(strings.TrimSpace(rec.Body.String()), "\n") + 1
	assert.Equal(t, 202, lines)
}

func TestExportOffers_BadFilter(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	h := newOffersHandler(ms)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers/export?status=BOGUS", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Export(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown status")
}
