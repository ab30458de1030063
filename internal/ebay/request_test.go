package ebay

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

func baseParams() BuildParams {
	return BuildParams{
		Request: &domain.ListingRequest{
			Title:           "Japan 1950s postcard, Mount Fuji",
			Description:     "Postally used, light corner wear.",
			Price:           6.5,
			Currency:        "USD",
			Quantity:        1,
			ItemFamily:      domain.FamilyPostcard,
			ListingType:     domain.ListingFixedPrice,
			ListingDuration: domain.DurationGTC,
		},
		Seller: domain.SellerContext{
			UserID:   "seller1",
			Location: "Portland, OR",
		},
		SKU:         "PC-20260301-abc123",
		ImageURLs:   []string{"https://i.example.com/1.jpg"},
		CategoryID:  47642,
		ConditionID: 3000,
		Country:     "US",
		Site:        "US",
	}
}

func TestBuildItem_Basics(t *testing.T) {
	t.Parallel()

	item := BuildItem(baseParams())

	assert.Equal(t, "Japan 1950s postcard, Mount Fuji", item.Title)
	assert.Equal(t, "<div><p>Postally used, light corner wear.</p></div>", item.Description)
	assert.Equal(t, "PC-20260301-abc123", item.SKU)
	assert.Equal(t, "47642", item.PrimaryCategory.CategoryID)
	require.NotNil(t, item.ConditionID)
	assert.Equal(t, 3000, *item.ConditionID)
	assert.Equal(t, "6.50", item.StartPrice.Value)
	assert.Equal(t, "USD", item.StartPrice.CurrencyID)
	assert.Equal(t, "FixedPriceItem", item.ListingType)
	assert.Equal(t, "GTC", item.ListingDuration)
	assert.Equal(t, "US", item.Country)
	assert.Equal(t, "Portland, OR", item.Location)
	require.NotNil(t, item.PictureDetails)
	assert.Equal(t, []string{"https://i.example.com/1.jpg"}, item.PictureDetails.PictureURL)
	assert.Nil(t, item.BuyItNowPrice)
	assert.Nil(t, item.ReservePrice)
	assert.Empty(t, item.ScheduleTime)
}

func TestBuildItem_TruncatesTitle(t *testing.T) {
	t.Parallel()

	p := baseParams()
	p.Request.Title = strings.Repeat("Carpathian mountain views ", 5)

	item := BuildItem(p)

	assert.LessOrEqual(t, len(item.Title), 80)
	assert.NotEqual(t, ' ', rune(item.Title[len(item.Title)-1]))
}

func TestBuildItem_OmitsConditionWhenUnknown(t *testing.T) {
	t.Parallel()

	p := baseParams()
	p.ConditionID = 0

	item := BuildItem(p)

	assert.Nil(t, item.ConditionID)
}

func TestBuildItem_AuctionPrices(t *testing.T) {
	t.Parallel()

	p := baseParams()
	p.Request.ListingType = domain.ListingAuction
	p.Request.ListingDuration = domain.DurationDays7
	p.Request.Price = 0.99
	p.Request.BuyItNowPrice = 5
	p.Request.ReservePrice = 2

	item := BuildItem(p)

	assert.Equal(t, "Chinese", item.ListingType)
	assert.Equal(t, "Days_7", item.ListingDuration)
	assert.Equal(t, "0.99", item.StartPrice.Value)
	require.NotNil(t, item.BuyItNowPrice)
	assert.Equal(t, "5.00", item.BuyItNowPrice.Value)
	require.NotNil(t, item.ReservePrice)
	assert.Equal(t, "2.00", item.ReservePrice.Value)
}

func TestBuildItem_ScheduleTime(t *testing.T) {
	t.Parallel()

	p := baseParams()
	schedule := time.Date(2026, 3, 5, 18, 30, 0, 0, time.FixedZone("EET", 2*3600))
	p.Request.ScheduleTime = &schedule

	item := BuildItem(p)

	assert.Equal(t, "2026-03-05T16:30:00Z", item.ScheduleTime)
}

func TestBuildItem_CertificationDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		aspects map[string][]string
		want    []string
	}{
		{
			name:    "no aspects",
			aspects: nil,
			want:    []string{"Uncertified"},
		},
		{
			name: "caller-provided certification",
			aspects: map[string][]string{
				"Certification": {"PSE"},
			},
			want: []string{"PSE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := baseParams()
			p.Request.Aspects = tt.aspects

			item := BuildItem(p)

			require.NotNil(t, item.ItemSpecifics)
			var got []string
			for _, nv := range item.ItemSpecifics.NameValueList {
				if nv.Name == "Certification" {
					got = nv.Value
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildItem_PolicyReferences(t *testing.T) {
	t.Parallel()

	p := baseParams()
	p.Policies = &domain.BusinessPolicySet{
		ShippingPolicyID: "ship-1",
		PaymentPolicyID:  "pay-1",
		ReturnPolicyID:   "ret-1",
	}

	item := BuildItem(p)

	require.NotNil(t, item.SellerProfiles)
	assert.Equal(t, "ship-1", item.SellerProfiles.Shipping.ShippingProfileID)
	assert.Equal(t, "pay-1", item.SellerProfiles.Payment.PaymentProfileID)
	assert.Equal(t, "ret-1", item.SellerProfiles.Return.ReturnProfileID)

	// Profile references and inline details are mutually exclusive.
	assert.Nil(t, item.ShippingDetails)
	assert.Nil(t, item.PaymentMethods)
	assert.Nil(t, item.ReturnPolicy)
	assert.Nil(t, item.DispatchTimeMax)
}

func TestBuildItem_InlineFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		policies *domain.BusinessPolicySet
	}{
		{
			name:     "nil policy set",
			policies: nil,
		},
		{
			name: "partial policy set",
			policies: &domain.BusinessPolicySet{
				ShippingPolicyID: "ship-1",
				PaymentPolicyID:  "pay-1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := baseParams()
			p.Policies = tt.policies

			item := BuildItem(p)

			assert.Nil(t, item.SellerProfiles)
			require.NotNil(t, item.ShippingDetails)
			assert.Equal(t, "Flat", item.ShippingDetails.ShippingType)
			require.Len(t, item.ShippingDetails.ShippingServiceOptions, 1)
			assert.Equal(t, "3.00", item.ShippingDetails.ShippingServiceOptions[0].ShippingServiceCost.Value)
			assert.Equal(t, []string{"PayPal"}, item.PaymentMethods)
			require.NotNil(t, item.ReturnPolicy)
			assert.Equal(t, "ReturnsAccepted", item.ReturnPolicy.ReturnsAcceptedOption)
			assert.Equal(t, "Days_30", item.ReturnPolicy.ReturnsWithinOption)
			require.NotNil(t, item.DispatchTimeMax)

			// The fallback covers all three policy areas on the wire.
			raw, err := xml.Marshal(item)
			require.NoError(t, err)
			assert.Contains(t, string(raw), "<PaymentMethods>PayPal</PaymentMethods>")
			assert.Contains(t, string(raw), "<ShippingDetails>")
			assert.Contains(t, string(raw), "<ReturnPolicy>")
		})
	}
}

func TestBuildItem_MarshalsWithCurrencyAttribute(t *testing.T) {
	t.Parallel()

	item := BuildItem(baseParams())

	out, err := xml.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<StartPrice currencyID="USD">6.50</StartPrice>`)
	assert.Contains(t, string(out), "<Country>US</Country>")
	assert.Contains(t, string(out), "<Location>Portland, OR</Location>")
}
