// Package domain defines the core business types for the stampdesk
// listing pipeline.
package domain

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"
)

// Environment selects between the eBay sandbox and production sites.
type Environment string

// Environment constants.
const (
	EnvSandbox    Environment = "sandbox"
	EnvProduction Environment = "production"
)

// ListingBaseURL returns the user-facing item URL prefix for the environment.
func (e Environment) ListingBaseURL() string {
	if e == EnvSandbox {
		return "https://sandbox.ebay.com/itm/"
	}
	return "https://www.ebay.com/itm/"
}

// ListingType is the eBay listing format. It is a closed enum so that
// dispatch on listing type is exhaustive rather than a string fallthrough.
type ListingType string

// Listing type constants.
const (
	ListingFixedPrice ListingType = "fixed_price"
	ListingAuction    ListingType = "auction"
)

// Valid reports whether t is a known listing type.
func (t ListingType) Valid() bool {
	return t == ListingFixedPrice || t == ListingAuction
}

// ListingDuration is the eBay listing duration code.
type ListingDuration string

// Listing duration constants. GTC is only valid for fixed-price listings;
// the day-bounded durations are the only ones auctions accept.
const (
	DurationGTC    ListingDuration = "GTC"
	DurationDays3  ListingDuration = "Days_3"
	DurationDays5  ListingDuration = "Days_5"
	DurationDays7  ListingDuration = "Days_7"
	DurationDays10 ListingDuration = "Days_10"
)

// AuctionDurations lists the durations eBay accepts for auction listings.
var AuctionDurations = []ListingDuration{
	DurationDays3, DurationDays5, DurationDays7, DurationDays10,
}

// ValidForAuction reports whether d is an accepted auction duration.
func (d ListingDuration) ValidForAuction() bool {
	for _, a := range AuctionDurations {
		if d == a {
			return true
		}
	}
	return false
}

// Days returns the duration in days, or 0 for GTC and unknown values.
func (d ListingDuration) Days() int {
	switch d {
	case DurationDays3:
		return 3
	case DurationDays5:
		return 5
	case DurationDays7:
		return 7
	case DurationDays10:
		return 10
	default:
		return 0
	}
}

// ItemFamily distinguishes the two item types the pipeline lists. It
// drives the SKU prefix and the fixed category used for postcards.
type ItemFamily string

// Item family constants.
const (
	FamilyPostcard ItemFamily = "postcard"
	FamilyStamp    ItemFamily = "stamp"
)

// SKUPrefix returns the SKU prefix for the family.
func (f ItemFamily) SKUPrefix() string {
	if f == FamilyPostcard {
		return "PC-"
	}
	return "STAMP-"
}

// ListingRequest is the normalized input to the listing pipeline. It is
// constructed fresh per submission; the pipeline never mutates it.
type ListingRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Currency    string     `json:"currency"`
	Condition   string     `json:"condition"` // free-text grade, normalized by pkg/condition
	Quantity    int        `json:"quantity"`
	Images      []string   `json:"images"` // local paths or already-hosted URLs, ordered
	ItemFamily  ItemFamily `json:"item_family"`

	// Category: either a resolved leaf category id (stamps) or the fixed
	// postcard category when ItemFamily is postcard.
	CategoryID int    `json:"category_id"`
	RegionCode string `json:"region_code,omitempty"`

	ListingType     ListingType     `json:"listing_type"`
	ListingDuration ListingDuration `json:"listing_duration"`
	// BuyItNowPrice and ReservePrice apply to auctions only; zero means unset.
	BuyItNowPrice float64    `json:"buy_it_now_price,omitempty"`
	ReservePrice  float64    `json:"reserve_price,omitempty"`
	ScheduleTime  *time.Time `json:"schedule_time,omitempty"` // UTC

	// Aspects are marketplace item specifics, attribute name to values.
	Aspects map[string][]string `json:"aspects,omitempty"`
}

// SellerContext identifies the seller account a submission runs under.
type SellerContext struct {
	UserID      string      `json:"user_id"`
	Environment Environment `json:"environment"`
	// DefaultCountry is the two-letter country code used when the seller's
	// registered country cannot be detected.
	DefaultCountry string `json:"default_country,omitempty"`
	// Location is the free-text item location shown to buyers.
	Location string `json:"location,omitempty"`
}

// BusinessPolicySet holds the seller's shipping, payment, and return policy
// ids. The set is attached to a request all-or-nothing: a partially-filled
// set must never reach the wire because eBay rejects incomplete
// SellerProfiles blocks.
type BusinessPolicySet struct {
	ShippingPolicyID string `json:"shipping_policy_id,omitempty"`
	PaymentPolicyID  string `json:"payment_policy_id,omitempty"`
	ReturnPolicyID   string `json:"return_policy_id,omitempty"`
}

// Complete reports whether all three policy ids are present.
func (p *BusinessPolicySet) Complete() bool {
	return p != nil &&
		p.ShippingPolicyID != "" &&
		p.PaymentPolicyID != "" &&
		p.ReturnPolicyID != ""
}

// ListingResult is the outcome of one pipeline invocation.
type ListingResult struct {
	Success    bool     `json:"success"`
	SKU        string   `json:"sku"`
	ItemID     string   `json:"item_id,omitempty"`
	ListingURL string   `json:"listing_url,omitempty"`
	OfferID    string   `json:"offer_id,omitempty"`
	Error      string   `json:"error,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
	// UploadDegraded is set when every image host failed and the listing
	// went out with the placeholder image.
	UploadDegraded bool `json:"upload_degraded,omitempty"`
}

// AttemptStatus is the persisted state of a listing attempt.
type AttemptStatus string

// Attempt status constants.
const (
	AttemptSucceeded AttemptStatus = "succeeded"
	AttemptFailed    AttemptStatus = "failed"
)

// Attempt is one row in the tracking store: a single listing submission,
// success or failure, keyed by SKU. Rows are written once and never mutated.
type Attempt struct {
	SKU             string          `json:"sku"                     db:"sku"`
	ItemID          string          `json:"item_id,omitempty"       db:"item_id"`
	Status          AttemptStatus   `json:"status"                  db:"status"`
	ErrorText       string          `json:"error_text,omitempty"    db:"error_text"`
	Title           string          `json:"title"                   db:"title"`
	Price           float64         `json:"price"                   db:"price"`
	Currency        string          `json:"currency"                db:"currency"`
	Condition       string          `json:"condition"               db:"condition"`
	Aspects         json.RawMessage `json:"aspects,omitempty"       db:"aspects"`
	Environment     Environment     `json:"environment"             db:"environment"`
	ListingType     ListingType     `json:"listing_type"            db:"listing_type"`
	ListingDuration ListingDuration `json:"listing_duration"        db:"listing_duration"`
	ScheduleTime    *time.Time      `json:"schedule_time,omitempty" db:"schedule_time"`
	ListingURL      string          `json:"listing_url,omitempty"   db:"listing_url"`
	CreatedAt       time.Time       `json:"created_at"              db:"created_at"`
}

// TruncateTitle shortens a title to the eBay 80-character limit, trimming
// trailing whitespace left by the cut. The cut lands on a rune boundary so
// a multi-byte character straddling the limit is dropped whole rather than
// split into invalid UTF-8.
func TruncateTitle(title string) string {
	const maxLen = 80
	if len(title) <= maxLen {
		return title
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(title[cut]) {
		cut--
	}
	return strings.TrimRight(title[:cut], " ")
}
