package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultTokenURL = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	refreshBuffer   = 60 * time.Second

	defaultScopes = "https://api.ebay.com/oauth/api_scope " +
		"https://api.ebay.com/oauth/api_scope/sell.inventory " +
		"https://api.ebay.com/oauth/api_scope/sell.account"
)

// UserTokenProvider implements TokenProvider using the eBay OAuth2
// refresh-token flow. Listing calls act on a seller's account, so they
// need a user token, not a client-credentials application token. Tokens
// are cached and refreshed automatically when within 60 seconds of
// expiry. Thread-safe via mutex.
type UserTokenProvider struct {
	appID        string
	certID       string
	refreshToken string
	tokenURL     string
	scopes       string
	client       *http.Client

	mu      sync.Mutex
	token   string
	expiry  time.Time
	nowFunc func() time.Time // for testing
}

// AuthOption configures the UserTokenProvider.
type AuthOption func(*UserTokenProvider)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) AuthOption {
	return func(p *UserTokenProvider) {
		p.tokenURL = u
	}
}

// WithAuthHTTPClient overrides the default HTTP client.
func WithAuthHTTPClient(c *http.Client) AuthOption {
	return func(p *UserTokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) AuthOption {
	return func(p *UserTokenProvider) {
		p.nowFunc = f
	}
}

// NewUserTokenProvider creates a token provider for the given application
// credentials and long-lived refresh token.
func NewUserTokenProvider(
	appID, certID, refreshToken string,
	opts ...AuthOption,
) *UserTokenProvider {
	p := &UserTokenProvider{
		appID:        appID,
		certID:       certID,
		refreshToken: refreshToken,
		tokenURL:     defaultTokenURL,
		scopes:       defaultScopes,
		client:       &http.Client{Timeout: 10 * time.Second},
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Token returns a valid OAuth2 user access token, refreshing if necessary.
func (p *UserTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.nowFunc().Before(p.expiry.Add(-refreshBuffer)) {
		return p.token, nil
	}

	return p.refreshLocked(ctx)
}

func (p *UserTokenProvider) refreshLocked(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {p.refreshToken},
		"scope":         {p.scopes},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString(
		[]byte(p.appID + ":" + p.certID),
	)
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		return "", fmt.Errorf(
			"token request failed (status %d): %s - %s",
			resp.StatusCode,
			errResp.Error,
			errResp.ErrorDescription,
		)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("parsing token response: %w", err)
	}

	p.token = tokenResp.AccessToken
	p.expiry = p.nowFunc().Add(
		time.Duration(tokenResp.ExpiresIn) * time.Second,
	)

	return p.token, nil
}

// StaticTokenProvider returns a fixed token. Useful for tests and for
// callers that manage token refresh externally.
type StaticTokenProvider string

// Token implements TokenProvider.
func (s StaticTokenProvider) Token(context.Context) (string, error) {
	return string(s), nil
}
