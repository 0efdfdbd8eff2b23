package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/offerdesk/offerdesk/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListOffers(context.Background(), OfferFilters{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListOffers(context.Background(), OfferFilters{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_ListOffers(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/offers/all", r.URL.Path)
		assert.Equal(t, "PENDING", r.URL.Query().Get("status"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(OffersPage{
			Offers:     []domain.Offer{{ID: "offer-1"}},
			Pagination: domain.Pagination{Total: 21, Page: 2, Limit: 20, Pages: 2},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.ListOffers(context.Background(), OfferFilters{
		Status: "PENDING",
		Page:   2,
	})
	require.NoError(t, err)
	assert.Len(t, page.Offers, 1)
	assert.Equal(t, 2, page.Pagination.Pages)
}

func TestClient_SubmitOffer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/offers", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "prop-1", body["propertyId"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(OfferResult{
			Offer: domain.Offer{ID: "offer-1", Status: domain.OfferPending},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.SubmitOffer(context.Background(), SubmitOfferRequest{
		Email:        "jane@example.com",
		Phone:        "555-0101",
		PropertyID:   "prop-1",
		OfferedPrice: 275000,
		FirstName:    "Jane",
		LastName:     "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "offer-1", result.Offer.ID)
}

func TestClient_TransitionOffer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/offers/offer-1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "COUNTERED", body["offerStatus"])
		assert.InEpsilon(t, 290000.0, body["counterPrice"], 0.001)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(OfferResult{
			Offer: domain.Offer{ID: "offer-1", Status: domain.OfferCountered},
		})
	}))
	defer srv.Close()

	counter := 290000.0
	c := New(srv.URL)
	result, err := c.TransitionOffer(
		context.Background(), "offer-1", domain.OfferCountered, &counter,
	)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferCountered, result.Offer.Status)
}

func TestClient_ImportBuyers(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/buyers/import", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ImportResult{Created: 2, Errors: []string{}})
	}))
	defer srv.Close()

	csvPath := filepath.Join(t.TempDir(), "buyers.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"first_name,email\nJane,jane@example.com\nJohn,john@example.com\n",
	), 0o600))

	c := New(srv.URL)
	result, err := c.ImportBuyers(context.Background(), csvPath)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Errors)
}

func TestClient_ExportOffers(t *testing.T) {
	t.Parallel()

	const body = "offer_id,property_id\noffer-1,prop-1\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/offers/export", r.URL.Path)
		assert.Equal(t, "ACCEPTED", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "text/csv")
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	c := New(srv.URL)
	require.NoError(t, c.ExportOffers(context.Background(), OfferFilters{Status: "ACCEPTED"}, &buf))
	assert.Equal(t, body, buf.String())
}

func TestClient_OfferStats(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/offers/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.OfferStats{
			Total:    7,
			ByStatus: map[domain.OfferStatus]int{domain.OfferPending: 7},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	stats, err := c.OfferStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, stats.Total)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com/", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
	assert.Equal(t, "http://example.com", c.baseURL)
}
