package client

import (
	"context"
	"fmt"

	domain "github.com/offerdesk/offerdesk/pkg/types"
)

// BuyersPage is one page of the buyer list.
type BuyersPage struct {
	Buyers     []domain.Buyer    `json:"buyers"`
	Pagination domain.Pagination `json:"pagination"`
}

// ImportResult reports the outcome of a CSV import.
type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors"`
}

// ListBuyers returns a page of buyers.
func (c *Client) ListBuyers(ctx context.Context, page, limit int) (*BuyersPage, error) {
	path := "/api/v1/buyers"
	if page > 0 || limit > 0 {
		path = fmt.Sprintf("%s?page=%d&limit=%d", path, max(page, 1), max(limit, 1))
	}

	var result BuyersPage
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBuyer returns a single buyer with their offers.
func (c *Client) GetBuyer(ctx context.Context, id string) (*domain.Buyer, error) {
	var b domain.Buyer
	if err := c.get(ctx, "/api/v1/buyers/"+id, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ImportBuyers uploads a buyer CSV for import.
func (c *Client) ImportBuyers(ctx context.Context, csvPath string) (*ImportResult, error) {
	var result ImportResult
	if err := c.upload(ctx, "/api/v1/buyers/import", csvPath, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BuyerStats returns the aggregate buyer report.
func (c *Client) BuyerStats(ctx context.Context) (*domain.BuyerStats, error) {
	var stats domain.BuyerStats
	if err := c.get(ctx, "/api/v1/buyers/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
