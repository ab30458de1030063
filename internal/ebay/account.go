package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// AccountClient resolves seller-account state through the modern Sell
// APIs. These are read-only lookups; the listing itself still goes
// through the Trading endpoint.
type AccountClient struct {
	accountURL    string
	inventoryURL  string
	marketplaceID string
	tokens        TokenProvider
	client        *http.Client
	logger        *slog.Logger
}

// AccountOption configures the AccountClient.
type AccountOption func(*AccountClient)

// WithAccountHTTPClient overrides the default HTTP client.
func WithAccountHTTPClient(c *http.Client) AccountOption {
	return func(a *AccountClient) {
		a.client = c
	}
}

// WithAccountLogger sets the structured logger.
func WithAccountLogger(l *slog.Logger) AccountOption {
	return func(a *AccountClient) {
		a.logger = l
	}
}

// NewAccountClient creates a Sell Account/Inventory API client.
func NewAccountClient(
	accountURL, inventoryURL, marketplaceID string,
	tokens TokenProvider,
	opts ...AccountOption,
) *AccountClient {
	a := &AccountClient{
		accountURL:    accountURL,
		inventoryURL:  inventoryURL,
		marketplaceID: marketplaceID,
		tokens:        tokens,
		client:        &http.Client{Timeout: 15 * time.Second},
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type policyEntry struct {
	FulfillmentPolicyID string `json:"fulfillmentPolicyId"`
	PaymentPolicyID     string `json:"paymentPolicyId"`
	ReturnPolicyID      string `json:"returnPolicyId"`
	Name                string `json:"name"`
}

type fulfillmentPolicyList struct {
	Policies []policyEntry `json:"fulfillmentPolicies"`
}

type paymentPolicyList struct {
	Policies []policyEntry `json:"paymentPolicies"`
}

type returnPolicyList struct {
	Policies []policyEntry `json:"returnPolicies"`
}

// BusinessPolicies fetches the seller's business policy IDs, taking the
// first policy of each type in API return order. A failed or empty
// lookup for any type leaves that ID blank rather than failing: callers
// treat an incomplete set as a signal to fall back to inline policies.
func (a *AccountClient) BusinessPolicies(ctx context.Context) (*domain.BusinessPolicySet, error) {
	set := &domain.BusinessPolicySet{}

	var fulfillment fulfillmentPolicyList
	if err := a.getJSON(ctx, a.accountURL+"/fulfillment_policy", &fulfillment); err != nil {
		a.logger.Warn("fulfillment policy lookup failed", "error", err)
	} else if len(fulfillment.Policies) > 0 {
		set.ShippingPolicyID = fulfillment.Policies[0].FulfillmentPolicyID
	}

	var payment paymentPolicyList
	if err := a.getJSON(ctx, a.accountURL+"/payment_policy", &payment); err != nil {
		a.logger.Warn("payment policy lookup failed", "error", err)
	} else if len(payment.Policies) > 0 {
		set.PaymentPolicyID = payment.Policies[0].PaymentPolicyID
	}

	var returns returnPolicyList
	if err := a.getJSON(ctx, a.accountURL+"/return_policy", &returns); err != nil {
		a.logger.Warn("return policy lookup failed", "error", err)
	} else if len(returns.Policies) > 0 {
		set.ReturnPolicyID = returns.Policies[0].ReturnPolicyID
	}

	return set, nil
}

type inventoryLocationList struct {
	Locations []struct {
		Location struct {
			Address struct {
				CountryCode string `json:"country"`
			} `json:"address"`
		} `json:"location"`
	} `json:"locations"`
}

// SellerCountry returns the two-letter country code of the seller's
// first inventory location. An account with no locations returns an
// empty string and no error; callers substitute the configured default.
func (a *AccountClient) SellerCountry(ctx context.Context) (string, error) {
	var list inventoryLocationList
	if err := a.getJSON(ctx, a.inventoryURL+"/location", &list); err != nil {
		return "", err
	}
	if len(list.Locations) == 0 {
		return "", nil
	}
	return list.Locations[0].Location.Address.CountryCode, nil
}

// getJSON executes an authenticated GET against a Sell API endpoint,
// appending the marketplace filter, and decodes the JSON response.
func (a *AccountClient) getJSON(ctx context.Context, rawURL string, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parsing URL: %w", err)
	}
	q := u.Query()
	q.Set("marketplace_id", a.marketplaceID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	token, err := a.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("obtaining token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return domain.NewNetworkError("account API call failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewNetworkError("reading account API response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.NewNetworkError(
			fmt.Sprintf("account API returned HTTP %d: %s", resp.StatusCode, body), nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing account API response: %w", err)
	}
	return nil
}
