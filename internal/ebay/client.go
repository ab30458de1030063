// Package ebay implements the eBay Trading and Account API layer behind
// interfaces for testability. The listing-creation calls use the legacy
// XML Trading protocol on purpose: the newer Inventory API has no field
// for an item's country of origin, which breaks cross-border sellers.
package ebay

import (
	"context"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// TokenProvider defines the interface for obtaining OAuth2 user tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TradingAPI is the listing-side surface the pipeline depends on.
type TradingAPI interface {
	// AddListing submits the item, dispatching AddItem or
	// AddFixedPriceItem by listing type.
	AddListing(ctx context.Context, item *Item, lt domain.ListingType) (*CallResult, error)
	// VerifyListing performs a VerifyAddFixedPriceItem dry run: full
	// validation on eBay's side without creating an item.
	VerifyListing(ctx context.Context, item *Item) (*CallResult, error)
	// UploadPicture posts image bytes to eBay Picture Services and
	// returns the hosted URL.
	UploadPicture(ctx context.Context, name string, data []byte) (string, error)
}

// AccountAPI resolves seller-account state needed by the pipeline.
type AccountAPI interface {
	// BusinessPolicies fetches the seller's shipping/payment/return
	// policy ids. A partially-filled or empty set with a nil or non-nil
	// error is expected; callers degrade to inline fallback policies.
	BusinessPolicies(ctx context.Context) (*domain.BusinessPolicySet, error)
	// SellerCountry returns the seller's registered two-letter country
	// code from the first inventory location.
	SellerCountry(ctx context.Context) (string, error)
}

// CallResult is the uniform outcome of a Trading API call.
type CallResult struct {
	// Ack is the raw acknowledgement value ("Success", "Warning",
	// "Failure", or empty when the node was missing).
	Ack string
	// ItemID is set when eBay created (or verified) an item.
	ItemID string
	// Warnings carries advisory messages from Warning acks.
	Warnings []string
	// Raw is the unparsed response body, kept for diagnostics.
	Raw []byte
}
