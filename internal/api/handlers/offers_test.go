package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/offerdesk/offerdesk/internal/api/handlers"
	"github.com/offerdesk/offerdesk/internal/engine"
	"github.com/offerdesk/offerdesk/internal/notify"
	"github.com/offerdesk/offerdesk/internal/reports"
	"github.com/offerdesk/offerdesk/internal/store"
	storeMocks "github.com/offerdesk/offerdesk/internal/store/mocks"
	domain "github.com/offerdesk/offerdesk/pkg/types"
)

// nopEvents discards notification events in handler tests.
type nopEvents struct{}

func (nopEvents) Enqueue(notify.Event) {}

func newOffersHandler(ms store.Store) *handlers.OffersHandler {
	eng := engine.NewEngine(ms, nopEvents{})
	return handlers.NewOffersHandler(eng, ms, reports.NewService(ms))
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func submitJSON(price float64) string {
	return `{
		"email": "jane@example.com",
		"phone": "555-0101",
		"propertyId": "prop-1",
		"offeredPrice": ` + strconv.FormatFloat(price, 'f', -1, 64) + `,
		"firstName": "Jane",
		"lastName": "Doe"
	}`
}

func TestSubmitOffer_MissingFields(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	h := newOffersHandler(ms)

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/api/v1/offers", `{
		"email": "jane@example.com",
		"propertyId": "prop-1"
	}`)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing required fields")
	assert.Contains(t, rec.Body.String(), `"offeredPrice"`)
	assert.Contains(t, rec.Body.String(), `"firstName"`)
}

func TestSubmitOffer_PropertyNotFound(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetProperty(mock.Anything, "prop-1").
		Return(nil, pgx.ErrNoRows).
		Once()

	h := newOffersHandler(ms)

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/api/v1/offers", submitJSON(275000))

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "property not found")
}

func TestSubmitOffer_CreatesOffer(t *testing.T) {
	t.Parallel()

	property := &domain.Property{
		ID:          "prop-1",
		Title:       "12 Oak St",
		AskingPrice: 300000,
	}
	buyer := &domain.Buyer{
		ID:        "buyer-1",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetProperty(mock.Anything, "prop-1").
		Return(property, nil).
		Once()
	ms.EXPECT().
		GetBuyerByEmailOrPhone(mock.Anything, "jane@example.com", "555-0101").
		Return(buyer, nil).
		Once()
	ms.EXPECT().
		GetOfferByBuyerAndProperty(mock.Anything, "buyer-1", "prop-1").
		Return(nil, pgx.ErrNoRows).
		Once()
	ms.EXPECT().
		CreateOffer(mock.Anything, mock.MatchedBy(func(o *domain.Offer) bool {
			return o.PropertyID == "prop-1" &&
				o.BuyerID == "buyer-1" &&
				o.OfferedPrice == 275000 &&
				o.Status == domain.OfferPending
		})).
		Run(func(_ context.Context, o *domain.Offer) {
			o.ID = "offer-1"
		}).
		Return(nil).
		Once()

	h := newOffersHandler(ms)

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/api/v1/offers", submitJSON(275000))

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"offer-1"`)
	assert.Contains(t, rec.Body.String(), "offer submitted and pending review")
}

func TestSubmitOffer_BelowMinimumWarns(t *testing.T) {
	t.Parallel()

	minPrice := 250000.0
	property := &domain.Property{
		ID:          "prop-1",
		Title:       "12 Oak St",
		AskingPrice: 300000,
		MinPrice:    &minPrice,
	}
	buyer := &domain.Buyer{
		ID:        "buyer-1",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetProperty(mock.Anything, "prop-1").
		Return(property, nil).
		Once()
	ms.EXPECT().
		GetBuyerByEmailOrPhone(mock.Anything, "jane@example.com", "555-0101").
		Return(buyer, nil).
		Once()
	ms.EXPECT().
		GetOfferByBuyerAndProperty(mock.Anything, "buyer-1", "prop-1").
		Return(nil, pgx.ErrNoRows).
		Once()
	ms.EXPECT().
		CreateOffer(mock.Anything, mock.MatchedBy(func(o *domain.Offer) bool {
			return o.OfferedPrice == 240000 && o.Status == domain.OfferRejected
		})).
		Run(func(_ context.Context, o *domain.Offer) {
			o.ID = "offer-1"
		}).
		Return(nil).
		Once()

	h := newOffersHandler(ms)

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/api/v1/offers", submitJSON(240000))

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"REJECTED"`)
	assert.Contains(t, rec.Body.String(), "below the minimum price")
}

func TestSubmitOffer_RaisesExistingOffer(t *testing.T) {
	t.Parallel()

	property := &domain.Property{
		ID:          "prop-1",
		Title:       "12 Oak St",
		AskingPrice: 300000,
	}
	buyer := &domain.Buyer{ID: "buyer-1", Email: "jane@example.com", FirstName: "Jane"}
	existing := &domain.Offer{
		ID:           "offer-1",
		PropertyID:   "prop-1",
		BuyerID:      "buyer-1",
		OfferedPrice: 250000,
		Status:       domain.OfferPending,
	}
	raised := &domain.Offer{
		ID:           "offer-1",
		PropertyID:   "prop-1",
		BuyerID:      "buyer-1",
		OfferedPrice: 275000,
		Status:       domain.OfferPending,
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetProperty(mock.Anything, "prop-1").
		Return(property, nil).
		Once()
	ms.EXPECT().
		GetBuyerByEmailOrPhone(mock.Anything, "jane@example.com", "555-0101").
		Return(buyer, nil).
		Once()
	ms.EXPECT().
		GetOfferByBuyerAndProperty(mock.Anything, "buyer-1", "prop-1").
		Return(existing, nil).
		Once()
	ms.EXPECT().
		RaiseOffer(
			mock.Anything, "offer-1", 250000.0, 275000.0,
			domain.OfferPending, mock.AnythingOfType("domain.Transition"),
		).
		Return(true, nil).
		Once()
	ms.EXPECT().
		GetOffer(mock.Anything, "offer-1").
		Return(raised, nil).
		Once()

	h := newOffersHandler(ms)

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/api/v1/offers", submitJSON(275000))

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "offer raised and pending review")
	assert.Contains(t, rec.Body.String(), `"offered_price":275000`)
}

func TestSubmitOffer_StaleReturnsExistingOffer(t *testing.T) {
	t.Parallel()

	property := &domain.Property{ID: "prop-1", AskingPrice: 300000}
	buyer := &domain.Buyer{ID: "buyer-1", Email: "jane@example.com", FirstName: "Jane"}
	existing := &domain.Offer{
		ID:           "offer-1",
		PropertyID:   "prop-1",
		BuyerID:      "buyer-1",
		OfferedPrice: 280000,
		Status:       domain.OfferPending,
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetProperty(mock.Anything, "prop-1").
		Return(property, nil).
		Once()
	ms.EXPECT().
		GetBuyerByEmailOrPhone(mock.Anything, "jane@example.com", "555-0101").
		Return(buyer, nil).
		Once()
	ms.EXPECT().
		GetOfferByBuyerAndProperty(mock.Anything, "buyer-1", "prop-1").
		Return(existing, nil).
		Once()

	h := newOffersHandler(ms)

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/api/v1/offers", submitJSON(275000))

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"existing_offer"`)
	assert.Contains(t, rec.Body.String(), `"offered_price":280000`)
}

func TestOffersByProperty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns offers newest first",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOffersByProperty(mock.Anything, "prop-1").
					Return([]domain.Offer{
						{ID: "offer-2", OfferedPrice: 290000},
						{ID: "offer-1", OfferedPrice: 250000},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_offers":2`,
		},
		{
			name: "no offers yields empty list",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOffersByProperty(mock.Anything, "prop-1").
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"offers":[]`,
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOffersByProperty(mock.Anything, "prop-1").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing offers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := newOffersHandler(ms)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/offers/property/prop-1", http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("propertyId")
			c.SetParamValues("prop-1")

			require.NoError(t, h.ByProperty(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestOffersByBuyer(t *testing.T) {
	t.Parallel()

	buyer := &domain.Buyer{ID: "buyer-1", Email: "jane@example.com"}

	tests := []struct {
		name       string
		target     string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "by buyer id",
			target: "/api/v1/offers/buyer?buyerId=buyer-1",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetBuyer(mock.Anything, "buyer-1").
					Return(buyer, nil).
					Once()
				m.EXPECT().
					ListOffersByBuyer(mock.Anything, "buyer-1").
					Return([]domain.Offer{{ID: "offer-1"}}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_offers":1`,
		},
		{
			name:   "by email",
			target: "/api/v1/offers/buyer?email=jane@example.com",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetBuyerByEmailOrPhone(mock.Anything, "jane@example.com", "").
					Return(buyer, nil).
					Once()
				m.EXPECT().
					ListOffersByBuyer(mock.Anything, "buyer-1").
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"offers":[]`,
		},
		{
			name:       "missing identifiers",
			target:     "/api/v1/offers/buyer",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "buyerId, email, or phone is required",
		},
		{
			name:   "unknown buyer",
			target: "/api/v1/offers/buyer?email=ghost@example.com",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetBuyerByEmailOrPhone(mock.Anything, "ghost@example.com", "").
					Return(nil, pgx.ErrNoRows).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "buyer not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := newOffersHandler(ms)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.ByBuyer(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestListOffers(t *testing.T) {
	t.Parallel()

	status := domain.OfferPending

	tests := []struct {
		name       string
		target     string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "defaults",
			target: "/api/v1/offers/all",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOffers(mock.Anything, mock.MatchedBy(func(q *store.OfferQuery) bool {
						return q.Status == nil && q.Page == 1 && q.Limit == 20
					})).
					Return([]domain.Offer{{ID: "offer-1"}}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"pages":1`,
		},
		{
			name:   "status filter and pagination",
			target: "/api/v1/offers/all?status=PENDING&page=2&limit=10",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOffers(mock.Anything, mock.MatchedBy(func(q *store.OfferQuery) bool {
						return q.Status != nil && *q.Status == status &&
							q.Page == 2 && q.Limit == 10
					})).
					Return(nil, 35, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"pages":4`,
		},
		{
			name:   "ALL disables the status filter",
			target: "/api/v1/offers/all?status=ALL",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOffers(mock.Anything, mock.MatchedBy(func(q *store.OfferQuery) bool {
						return q.Status == nil
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"offers":[]`,
		},
		{
			name:   "date range",
			target: "/api/v1/offers/all?startDate=2026-01-01&endDate=2026-01-31",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOffers(mock.Anything, mock.MatchedBy(func(q *store.OfferQuery) bool {
						return q.StartDate != nil && q.EndDate != nil &&
							q.StartDate.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"offers":[]`,
		},
		{
			name:       "invalid status",
			target:     "/api/v1/offers/all?status=BOGUS",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `unknown status`,
		},
		{
			name:       "invalid date",
			target:     "/api/v1/offers/all?startDate=January",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid startDate`,
		},
		{
			name:       "invalid page",
			target:     "/api/v1/offers/all?page=0",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid page`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := newOffersHandler(ms)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.List(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestTransitionOffer(t *testing.T) {
	t.Parallel()

	t.Run("missing status", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		h := newOffersHandler(ms)

		e := echo.New()
		c, rec := jsonContext(e, http.MethodPut, "/api/v1/offers/offer-1", `{}`)
		c.SetParamNames("id")
		c.SetParamValues("offer-1")

		require.NoError(t, h.Transition(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "offerStatus is required")
	})

	t.Run("countered without counter price", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		h := newOffersHandler(ms)

		e := echo.New()
		c, rec := jsonContext(e, http.MethodPut, "/api/v1/offers/offer-1",
			`{"offerStatus": "COUNTERED"}`)
		c.SetParamNames("id")
		c.SetParamValues("offer-1")

		require.NoError(t, h.Transition(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "counter_price")
	})

	t.Run("offer not found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetOffer(mock.Anything, "offer-missing").
			Return(nil, pgx.ErrNoRows).
			Once()

		h := newOffersHandler(ms)

		e := echo.New()
		c, rec := jsonContext(e, http.MethodPut, "/api/v1/offers/offer-missing",
			`{"offerStatus": "ACCEPTED"}`)
		c.SetParamNames("id")
		c.SetParamValues("offer-missing")

		require.NoError(t, h.Transition(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "offer not found")
	})

	t.Run("counter echoes counter price", func(t *testing.T) {
		t.Parallel()

		counter := 290000.0
		current := &domain.Offer{
			ID:           "offer-1",
			PropertyID:   "prop-1",
			OfferedPrice: 275000,
			Status:       domain.OfferPending,
		}
		updated := &domain.Offer{
			ID:           "offer-1",
			PropertyID:   "prop-1",
			OfferedPrice: 275000,
			Status:       domain.OfferCountered,
			CounterPrice: &counter,
		}

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetOffer(mock.Anything, "offer-1").
			Return(current, nil).
			Once()
		ms.EXPECT().
			UpdateOfferStatus(
				mock.Anything, "offer-1", domain.OfferCountered,
				mock.MatchedBy(func(p *float64) bool { return p != nil && *p == counter }),
				mock.AnythingOfType("domain.Transition"),
			).
			Return(updated, nil).
			Once()
		ms.EXPECT().
			GetProperty(mock.Anything, "prop-1").
			Return(nil, pgx.ErrNoRows).
			Maybe()

		h := newOffersHandler(ms)

		e := echo.New()
		c, rec := jsonContext(e, http.MethodPut, "/api/v1/offers/offer-1",
			`{"offerStatus": "COUNTERED", "counterPrice": 290000}`)
		c.SetParamNames("id")
		c.SetParamValues("offer-1")

		require.NoError(t, h.Transition(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"counter_price":290000`)
		assert.Contains(t, rec.Body.String(), `"COUNTERED"`)
	})
}

func TestOfferStatsEndpoint(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		CountOffersByStatus(mock.Anything).
		Return(map[domain.OfferStatus]int{
			domain.OfferPending:  4,
			domain.OfferAccepted: 2,
		}, nil).
		Once()
	ms.EXPECT().
		TrendSince(mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]domain.TrendPoint{
			{Date: "2026-08-30", Total: 3},
		}, nil).
		Once()
	ms.EXPECT().
		TopProperties(mock.Anything, 5).
		Return([]domain.PropertyOfferCount{
			{PropertyID: "prop-1", Count: 6},
		}, nil).
		Once()
	ms.EXPECT().
		ListPropertySummaries(mock.Anything, []string{"prop-1"}).
		Return(map[string]domain.PropertySummary{
			"prop-1": {ID: "prop-1", Title: "12 Oak St"},
		}, nil).
		Once()

	h := newOffersHandler(ms)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers/stats", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":6`)
	assert.Contains(t, rec.Body.String(), `"12 Oak St"`)
}
