package ebay

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/stampdesk/stampdesk/internal/metrics"
	domain "github.com/stampdesk/stampdesk/pkg/types"
)

const (
	tradingNamespace = "urn:ebay:apis:eBLBaseComponents"

	headerSiteID        = "X-EBAY-API-SITEID"
	headerCompatibility = "X-EBAY-API-COMPATIBILITY-LEVEL"
	headerCallName      = "X-EBAY-API-CALL-NAME"
	headerIAFToken      = "X-EBAY-API-IAF-TOKEN" //nolint:gosec // header name, not a credential
)

// Call names dispatched to the Trading endpoint.
const (
	callAddItem          = "AddItem"
	callAddFixedPrice    = "AddFixedPriceItem"
	callVerifyAddItem    = "VerifyAddItem"
	callVerifyFixedPrice = "VerifyAddFixedPriceItem"
	callUploadSiteHosted = "UploadSiteHostedPictures"
)

// TradingClient talks to the legacy eBay Trading API. The OAuth user
// token travels in the X-EBAY-API-IAF-TOKEN header, never in the XML
// body; the old RequesterCredentials element is for Auth'n'Auth tokens,
// which eBay no longer issues.
type TradingClient struct {
	endpoint    string
	siteID      string
	compatLevel string
	tokens      TokenProvider
	client      *http.Client
	limiter     *RateLimiter
	logger      *slog.Logger
}

// TradingOption configures the TradingClient.
type TradingOption func(*TradingClient)

// WithTradingHTTPClient overrides the default HTTP client.
func WithTradingHTTPClient(c *http.Client) TradingOption {
	return func(t *TradingClient) {
		t.client = c
	}
}

// WithTradingRateLimiter attaches a rate limiter to the client.
func WithTradingRateLimiter(r *RateLimiter) TradingOption {
	return func(t *TradingClient) {
		t.limiter = r
	}
}

// WithTradingLogger sets the structured logger.
func WithTradingLogger(l *slog.Logger) TradingOption {
	return func(t *TradingClient) {
		t.logger = l
	}
}

// NewTradingClient creates a Trading API client for the given endpoint,
// site ID, and compatibility level.
func NewTradingClient(
	endpoint, siteID, compatLevel string,
	tokens TokenProvider,
	opts ...TradingOption,
) *TradingClient {
	t := &TradingClient{
		endpoint:    endpoint,
		siteID:      siteID,
		compatLevel: compatLevel,
		tokens:      tokens,
		client:      &http.Client{Timeout: 30 * time.Second},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// itemEnvelope is the request body shared by the add and verify calls.
// The root element name varies by call, so XMLName is set at build time.
type itemEnvelope struct {
	XMLName       xml.Name
	Xmlns         string `xml:"xmlns,attr"`
	ErrorLanguage string `xml:"ErrorLanguage"`
	WarningLevel  string `xml:"WarningLevel"`
	Item          *Item  `xml:"Item"`
}

func newItemEnvelope(callName string, item *Item) *itemEnvelope {
	return &itemEnvelope{
		XMLName:       xml.Name{Local: callName + "Request"},
		Xmlns:         tradingNamespace,
		ErrorLanguage: "en_US",
		WarningLevel:  "High",
		Item:          item,
	}
}

// AddListing submits the item, choosing AddItem for auctions and
// AddFixedPriceItem for fixed-price listings.
func (t *TradingClient) AddListing(
	ctx context.Context,
	item *Item,
	lt domain.ListingType,
) (*CallResult, error) {
	var callName string
	switch lt {
	case domain.ListingAuction:
		callName = callAddItem
	case domain.ListingFixedPrice:
		callName = callAddFixedPrice
	default:
		return nil, fmt.Errorf("unknown listing type %q", lt)
	}

	raw, err := t.call(ctx, callName, newItemEnvelope(callName, item))
	if err != nil {
		return nil, err
	}
	return parseCallResult(raw)
}

// VerifyListing performs the verify variant of the add call. eBay runs
// the full validation pipeline without creating an item.
func (t *TradingClient) VerifyListing(
	ctx context.Context,
	item *Item,
) (*CallResult, error) {
	callName := callVerifyFixedPrice
	if item.ListingType == wireAuction {
		callName = callVerifyAddItem
	}

	raw, err := t.call(ctx, callName, newItemEnvelope(callName, item))
	if err != nil {
		return nil, err
	}
	return parseCallResult(raw)
}

// pictureEnvelope is the XML part of an UploadSiteHostedPictures call.
type pictureEnvelope struct {
	XMLName     xml.Name `xml:"UploadSiteHostedPicturesRequest"`
	Xmlns       string   `xml:"xmlns,attr"`
	PictureName string   `xml:"PictureName"`
	PictureSet  string   `xml:"PictureSet"`
}

// UploadPicture posts image bytes to eBay Picture Services via a
// multipart request and returns the EPS-hosted URL.
func (t *TradingClient) UploadPicture(
	ctx context.Context,
	name string,
	data []byte,
) (string, error) {
	envelope := pictureEnvelope{
		Xmlns:       tradingNamespace,
		PictureName: name,
		PictureSet:  "Standard",
	}
	payload, err := xml.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("marshaling picture request: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	xmlPart, err := writer.CreateFormField("XML Payload")
	if err != nil {
		return "", fmt.Errorf("creating payload part: %w", err)
	}
	if _, err := xmlPart.Write([]byte(xml.Header + string(payload))); err != nil {
		return "", fmt.Errorf("writing payload part: %w", err)
	}

	filePart, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("creating file part: %w", err)
	}
	if _, err := filePart.Write(data); err != nil {
		return "", fmt.Errorf("writing file part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalizing multipart body: %w", err)
	}

	raw, err := t.do(ctx, callUploadSiteHosted, &body, writer.FormDataContentType())
	if err != nil {
		return "", err
	}
	return parsePictureURL(raw)
}

// call marshals payload and executes a plain XML Trading call.
func (t *TradingClient) call(
	ctx context.Context,
	callName string,
	payload any,
) ([]byte, error) {
	body, err := xml.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s request: %w", callName, err)
	}
	full := append([]byte(xml.Header), body...)
	return t.do(ctx, callName, bytes.NewReader(full), "text/xml")
}

// do executes one Trading API HTTP exchange with the standard headers,
// the rate limiter, and call metrics.
func (t *TradingClient) do(
	ctx context.Context,
	callName string,
	body io.Reader,
	contentType string,
) ([]byte, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", callName, err)
	}

	token, err := t.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtaining token: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set(headerSiteID, t.siteID)
	req.Header.Set(headerCompatibility, t.compatLevel)
	req.Header.Set(headerCallName, callName)
	req.Header.Set(headerIAFToken, token)

	start := time.Now()
	resp, err := t.client.Do(req)
	metrics.TradingCallDuration.WithLabelValues(callName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TradingCallsTotal.WithLabelValues(callName).Inc()
		return nil, domain.NewNetworkError(
			fmt.Sprintf("%s call failed", callName), err)
	}
	defer resp.Body.Close()
	metrics.TradingCallsTotal.WithLabelValues(callName).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewNetworkError(
			fmt.Sprintf("reading %s response", callName), err)
	}

	t.logger.Debug("trading call completed",
		"call", callName,
		"status", resp.StatusCode,
		"bytes", len(raw),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewNetworkError(
			fmt.Sprintf("%s returned HTTP %d", callName, resp.StatusCode), nil)
	}
	return raw, nil
}
