package client

import (
	"context"
	"net/url"

	"github.com/stampdesk/stampdesk/pkg/category"
	domain "github.com/stampdesk/stampdesk/pkg/types"
	"github.com/stampdesk/stampdesk/pkg/vision"
)

// CategoryResponse is the category resolution response.
type CategoryResponse struct {
	category.Selection
	Resolved   bool `json:"resolved"`
	NeedsInput bool `json:"needs_input"`
}

// ResolveCategory maps country-of-origin text to a leaf category.
func (c *Client) ResolveCategory(ctx context.Context, country string) (*CategoryResponse, error) {
	q := url.Values{}
	q.Set("country", country)

	var resp CategoryResponse
	if err := c.get(ctx, "/api/v1/category?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConditionResponse is the condition mapping response.
type ConditionResponse struct {
	Code        string `json:"code"`
	ConditionID int    `json:"condition_id,omitempty"`
}

// MapCondition maps a free-text grade to the marketplace condition code.
func (c *Client) MapCondition(ctx context.Context, grade string) (*ConditionResponse, error) {
	q := url.Values{}
	q.Set("grade", grade)

	var resp ConditionResponse
	if err := c.get(ctx, "/api/v1/condition?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PoliciesResponse is the business policy lookup response.
type PoliciesResponse struct {
	Policies domain.BusinessPolicySet `json:"policies"`
	Complete bool                     `json:"complete"`
}

// GetPolicies returns the seller's business policy set.
func (c *Client) GetPolicies(ctx context.Context) (*PoliciesResponse, error) {
	var resp PoliciesResponse
	if err := c.get(ctx, "/api/v1/policies", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Extract drafts listing details from a photograph.
func (c *Client) Extract(
	ctx context.Context,
	itemFamily string,
	image []byte,
	imageMIME string,
) (*vision.CardDetails, error) {
	body := map[string]any{
		"item_family": itemFamily,
		"image":       image,
	}
	if imageMIME != "" {
		body["image_mime"] = imageMIME
	}

	var details vision.CardDetails
	if err := c.post(ctx, "/api/v1/extract", body, &details); err != nil {
		return nil, err
	}
	return &details, nil
}
