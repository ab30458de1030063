package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// ImagePayload is one photo attached to a submission.
type ImagePayload struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

// SubmitParams is the request body for submit and verify.
type SubmitParams struct {
	Title           string              `json:"title"`
	Description     string              `json:"description,omitempty"`
	Price           float64             `json:"price"`
	Currency        string              `json:"currency,omitempty"`
	Condition       string              `json:"condition,omitempty"`
	Quantity        int                 `json:"quantity,omitempty"`
	Country         string              `json:"country,omitempty"`
	CategoryID      int                 `json:"category_id,omitempty"`
	ItemFamily      string              `json:"item_family"`
	ListingType     string              `json:"listing_type,omitempty"`
	ListingDuration string              `json:"listing_duration,omitempty"`
	BuyItNowPrice   float64             `json:"buy_it_now_price,omitempty"`
	ReservePrice    float64             `json:"reserve_price,omitempty"`
	ScheduleTime    *time.Time          `json:"schedule_time,omitempty"`
	Aspects         map[string][]string `json:"aspects,omitempty"`
	Images          []ImagePayload      `json:"images,omitempty"`
}

// SubmitListing creates a listing on the marketplace.
func (c *Client) SubmitListing(
	ctx context.Context,
	params *SubmitParams,
) (*domain.ListingResult, error) {
	var result domain.ListingResult
	if err := c.post(ctx, "/api/v1/listings", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VerifyListing runs the marketplace's dry-run validation without
// creating an item.
func (c *Client) VerifyListing(
	ctx context.Context,
	params *SubmitParams,
) (*domain.ListingResult, error) {
	var result domain.ListingResult
	if err := c.post(ctx, "/api/v1/listings/verify", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AttemptsResponse wraps a paginated attempts response.
type AttemptsResponse struct {
	Attempts []domain.Attempt `json:"attempts"`
	Total    int              `json:"total"`
}

// ListAttemptsParams defines query parameters for attempt queries.
type ListAttemptsParams struct {
	Status      string
	Environment string
	ListingType string
	SKUPrefix   string
	Limit       int
	Offset      int
}

// ListAttempts returns recorded submission attempts matching the given
// parameters.
func (c *Client) ListAttempts(
	ctx context.Context,
	params *ListAttemptsParams,
) (*AttemptsResponse, error) {
	q := url.Values{}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Environment != "" {
		q.Set("environment", params.Environment)
	}
	if params.ListingType != "" {
		q.Set("listing_type", params.ListingType)
	}
	if params.SKUPrefix != "" {
		q.Set("sku_prefix", params.SKUPrefix)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp AttemptsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAttempt returns a single recorded attempt by SKU.
func (c *Client) GetAttempt(ctx context.Context, sku string) (*domain.Attempt, error) {
	var a domain.Attempt
	if err := c.get(ctx, fmt.Sprintf("/api/v1/listings/%s", sku), &a); err != nil {
		return nil, err
	}
	return &a, nil
}
