package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/offerdesk/offerdesk/pkg/types"
)

// OfferFilters narrows the offer list query.
type OfferFilters struct {
	Status     string
	PropertyID string
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	Search     string
	Page       int
	Limit      int
}

// OffersPage is one page of the offer list.
type OffersPage struct {
	Offers     []domain.Offer    `json:"offers"`
	Pagination domain.Pagination `json:"pagination"`
}

// SubmitOfferRequest is the body for offer submission.
type SubmitOfferRequest struct {
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	BuyerType    string  `json:"buyerType,omitempty"`
	PropertyID   string  `json:"propertyId"`
	OfferedPrice float64 `json:"offeredPrice"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
}

// OfferResult wraps an offer returned by a write endpoint.
type OfferResult struct {
	Offer   domain.Offer `json:"offer"`
	Message string       `json:"message,omitempty"`
}

func (f OfferFilters) values() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.PropertyID != "" {
		q.Set("propertyId", f.PropertyID)
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// ListOffers returns a filtered page of offers.
func (c *Client) ListOffers(ctx context.Context, f OfferFilters) (*OffersPage, error) {
	path := "/api/v1/offers/all"
	if encoded := f.values().Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page OffersPage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ExportOffers streams the filtered offer set as CSV into w.
func (c *Client) ExportOffers(ctx context.Context, f OfferFilters, w io.Writer) error {
	path := "/api/v1/offers/export"
	if encoded := f.values().Encode(); encoded != "" {
		path += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return fmt.Errorf("API server not running at %s", c.baseURL)
		}
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (HTTP %d): %s", resp.StatusCode, string(body))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("reading export: %w", err)
	}
	return nil
}

// SubmitOffer submits or raises an offer.
func (c *Client) SubmitOffer(ctx context.Context, req SubmitOfferRequest) (*OfferResult, error) {
	var result OfferResult
	if err := c.post(ctx, "/api/v1/offers", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TransitionOffer applies an admin decision to an offer.
func (c *Client) TransitionOffer(
	ctx context.Context,
	id string,
	status domain.OfferStatus,
	counterPrice *float64,
) (*OfferResult, error) {
	body := map[string]any{"offerStatus": status}
	if counterPrice != nil {
		body["counterPrice"] = *counterPrice
	}

	var result OfferResult
	if err := c.put(ctx, "/api/v1/offers/"+id, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// OfferStats returns the aggregate offer report.
func (c *Client) OfferStats(ctx context.Context) (*domain.OfferStats, error) {
	var stats domain.OfferStats
	if err := c.get(ctx, "/api/v1/offers/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
