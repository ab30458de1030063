package ebay

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// Wire values for the Trading API ListingType field.
const (
	wireFixedPrice = "FixedPriceItem"
	wireAuction    = "Chinese"
)

// Inline fallback values used when the seller account has no complete
// business policy set. The Trading API rejects items that mix profile
// references with inline details, so the fallback covers shipping,
// payment, and returns together.
const (
	fallbackShippingService = "USPSFirstClass"
	fallbackShippingCost    = 3.00
	fallbackDispatchDays    = 3
	fallbackPaymentMethod   = "PayPal"
	fallbackReturnsWithin   = "Days_30"
)

// Amount is a Trading API monetary value. The currency travels as an
// attribute and the value as formatted character data.
type Amount struct {
	CurrencyID string `xml:"currencyID,attr"`
	Value      string `xml:",chardata"`
}

// NewAmount formats a price for the wire with two decimal places.
func NewAmount(value float64, currency string) *Amount {
	return &Amount{
		CurrencyID: currency,
		Value:      strconv.FormatFloat(value, 'f', 2, 64),
	}
}

// CategoryRef identifies an eBay category by ID.
type CategoryRef struct {
	CategoryID string `xml:"CategoryID"`
}

// PictureDetails carries the hosted image URLs for a listing.
type PictureDetails struct {
	PictureURL []string `xml:"PictureURL"`
}

// NameValueList is a single item specific (aspect) on a listing.
type NameValueList struct {
	Name  string   `xml:"Name"`
	Value []string `xml:"Value"`
}

// ItemSpecifics holds the listing's item specifics.
type ItemSpecifics struct {
	NameValueList []NameValueList `xml:"NameValueList"`
}

// The three profile elements use differently named ID fields, so each
// gets its own ref type.
type shippingProfileRef struct {
	ShippingProfileID string `xml:"ShippingProfileID"`
}

type paymentProfileRef struct {
	PaymentProfileID string `xml:"PaymentProfileID"`
}

type returnProfileRef struct {
	ReturnProfileID string `xml:"ReturnProfileID"`
}

// sellerProfiles is the wire form of the policy reference block.
type sellerProfiles struct {
	Shipping *shippingProfileRef `xml:"SellerShippingProfile,omitempty"`
	Payment  *paymentProfileRef  `xml:"SellerPaymentProfile,omitempty"`
	Return   *returnProfileRef   `xml:"SellerReturnProfile,omitempty"`
}

// ShippingServiceOption is one inline shipping service entry.
type ShippingServiceOption struct {
	ShippingServicePriority int     `xml:"ShippingServicePriority"`
	ShippingService         string  `xml:"ShippingService"`
	ShippingServiceCost     *Amount `xml:"ShippingServiceCost"`
}

// ShippingDetails is the inline shipping fallback.
type ShippingDetails struct {
	ShippingType           string                  `xml:"ShippingType"`
	ShippingServiceOptions []ShippingServiceOption `xml:"ShippingServiceOptions"`
}

// ReturnPolicy is the inline returns fallback.
type ReturnPolicy struct {
	ReturnsAcceptedOption string `xml:"ReturnsAcceptedOption"`
	RefundOption          string `xml:"RefundOption"`
	ReturnsWithinOption   string `xml:"ReturnsWithinOption"`
	ShippingCostPaidBy    string `xml:"ShippingCostPaidByOption"`
}

// Item is the Trading API item payload shared by the add and verify
// calls. Country and Location are always set; the modern sell APIs have
// no country-of-origin field for collectibles, which is the reason this
// pipeline speaks the legacy XML protocol at all.
type Item struct {
	XMLName xml.Name `xml:"Item"`

	Title       string `xml:"Title"`
	Description string `xml:"Description"`
	SKU         string `xml:"SKU"`

	PrimaryCategory CategoryRef `xml:"PrimaryCategory"`
	ConditionID     *int        `xml:"ConditionID,omitempty"`

	StartPrice    *Amount `xml:"StartPrice"`
	BuyItNowPrice *Amount `xml:"BuyItNowPrice,omitempty"`
	ReservePrice  *Amount `xml:"ReservePrice,omitempty"`

	Quantity        int    `xml:"Quantity"`
	ListingType     string `xml:"ListingType"`
	ListingDuration string `xml:"ListingDuration"`
	ScheduleTime    string `xml:"ScheduleTime,omitempty"`

	Country  string `xml:"Country"`
	Location string `xml:"Location"`
	Currency string `xml:"Currency"`
	Site     string `xml:"Site"`

	PictureDetails *PictureDetails `xml:"PictureDetails,omitempty"`
	ItemSpecifics  *ItemSpecifics  `xml:"ItemSpecifics,omitempty"`

	SellerProfiles *sellerProfiles `xml:"SellerProfiles,omitempty"`

	DispatchTimeMax *int             `xml:"DispatchTimeMax,omitempty"`
	PaymentMethods  []string         `xml:"PaymentMethods,omitempty"`
	ShippingDetails *ShippingDetails `xml:"ShippingDetails,omitempty"`
	ReturnPolicy    *ReturnPolicy    `xml:"ReturnPolicy,omitempty"`
}

// BuildParams collects everything the builder needs to assemble an Item.
type BuildParams struct {
	Request     *domain.ListingRequest
	Seller      domain.SellerContext
	Policies    *domain.BusinessPolicySet
	SKU         string
	ImageURLs   []string
	CategoryID  int
	ConditionID int // 0 omits the field
	Country     string
	Site        string
}

// BuildItem assembles the Trading API item payload. The title is
// truncated to eBay's 80-character limit, the description is wrapped in
// simple HTML, and policy references are used only when the seller's
// policy set is complete; otherwise inline shipping, payment, dispatch,
// and return details take their place.
func BuildItem(p BuildParams) *Item {
	req := p.Request

	item := &Item{
		Title:       domain.TruncateTitle(req.Title),
		Description: wrapDescription(req.Description),
		SKU:         p.SKU,
		PrimaryCategory: CategoryRef{
			CategoryID: strconv.Itoa(p.CategoryID),
		},
		StartPrice:      NewAmount(req.Price, req.Currency),
		Quantity:        req.Quantity,
		ListingType:     listingTypeWire(req.ListingType),
		ListingDuration: string(req.ListingDuration),
		Country:         p.Country,
		Location:        p.Seller.Location,
		Currency:        req.Currency,
		Site:            p.Site,
	}

	if p.ConditionID != 0 {
		id := p.ConditionID
		item.ConditionID = &id
	}

	if req.ListingType == domain.ListingAuction {
		if req.BuyItNowPrice > 0 {
			item.BuyItNowPrice = NewAmount(req.BuyItNowPrice, req.Currency)
		}
		if req.ReservePrice > 0 {
			item.ReservePrice = NewAmount(req.ReservePrice, req.Currency)
		}
	}

	if req.ScheduleTime != nil {
		item.ScheduleTime = req.ScheduleTime.UTC().Format(time.RFC3339)
	}

	if len(p.ImageURLs) > 0 {
		item.PictureDetails = &PictureDetails{PictureURL: p.ImageURLs}
	}

	item.ItemSpecifics = buildSpecifics(req.Aspects)

	if p.Policies != nil && p.Policies.Complete() {
		item.SellerProfiles = &sellerProfiles{
			Shipping: &shippingProfileRef{ShippingProfileID: p.Policies.ShippingPolicyID},
			Payment:  &paymentProfileRef{PaymentProfileID: p.Policies.PaymentPolicyID},
			Return:   &returnProfileRef{ReturnProfileID: p.Policies.ReturnPolicyID},
		}
	} else {
		applyInlineFallback(item, req.Currency)
	}

	return item
}

// wrapDescription produces a minimal HTML body so the listing renders
// with paragraph spacing instead of a raw text blob.
func wrapDescription(desc string) string {
	return fmt.Sprintf("<div><p>%s</p></div>", desc)
}

func listingTypeWire(t domain.ListingType) string {
	if t == domain.ListingAuction {
		return wireAuction
	}
	return wireFixedPrice
}

// buildSpecifics converts aspects to item specifics, ensuring a
// Certification entry is always present since the category requires it.
func buildSpecifics(aspects map[string][]string) *ItemSpecifics {
	specifics := &ItemSpecifics{}
	hasCertification := false
	for name, values := range aspects {
		if len(values) == 0 {
			continue
		}
		if name == "Certification" {
			hasCertification = true
		}
		specifics.NameValueList = append(specifics.NameValueList, NameValueList{
			Name:  name,
			Value: values,
		})
	}
	if !hasCertification {
		specifics.NameValueList = append(specifics.NameValueList, NameValueList{
			Name:  "Certification",
			Value: []string{"Uncertified"},
		})
	}
	return specifics
}

// applyInlineFallback fills shipping, payment, dispatch, and return
// details inline. The API rejects items that mix profile references
// with inline blocks, so this path is taken only when no complete
// policy set exists, and it must cover every policy area itself.
func applyInlineFallback(item *Item, currency string) {
	dispatch := fallbackDispatchDays
	item.DispatchTimeMax = &dispatch
	item.PaymentMethods = []string{fallbackPaymentMethod}
	item.ShippingDetails = &ShippingDetails{
		ShippingType: "Flat",
		ShippingServiceOptions: []ShippingServiceOption{
			{
				ShippingServicePriority: 1,
				ShippingService:         fallbackShippingService,
				ShippingServiceCost:     NewAmount(fallbackShippingCost, currency),
			},
		},
	}
	item.ReturnPolicy = &ReturnPolicy{
		ReturnsAcceptedOption: "ReturnsAccepted",
		RefundOption:          "MoneyBack",
		ReturnsWithinOption:   fallbackReturnsWithin,
		ShippingCostPaidBy:    "Buyer",
	}
}
