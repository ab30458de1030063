package ebay

import (
	"fmt"
	"math"
	"time"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// eBay price floors and scheduling bounds for the US site. These are
// enforced locally so a doomed request never spends an API call.
const (
	minAuctionStartPrice = 0.99
	minBuyItNowRatio     = 1.30

	minScheduleLead    = time.Hour
	maxScheduleHorizon = 21 * 24 * time.Hour
)

// ValidateRequest checks a listing request before any network activity.
// It returns the first violation found as a validation error.
func ValidateRequest(req *domain.ListingRequest) error {
	if req.Title == "" {
		return domain.NewValidationError("title", "title is required")
	}
	if req.Description == "" {
		return domain.NewValidationError("description", "description is required")
	}
	if req.Price <= 0 {
		return domain.NewValidationError("price", "price must be positive")
	}
	if req.Quantity < 1 {
		return domain.NewValidationError("quantity", "quantity must be at least 1")
	}
	if !req.ListingType.Valid() {
		return domain.NewValidationError(
			"listing_type",
			fmt.Sprintf("unknown listing type %q", req.ListingType),
		)
	}
	if req.ListingType == domain.ListingAuction {
		return validateAuction(req)
	}
	return nil
}

// validateAuction enforces the auction-specific constraints: the start
// price floor, the Buy It Now premium over the start price, a reserve no
// lower than the start, a recognized auction duration, and single
// quantity. Multi-quantity auctions are Dutch auctions, which eBay
// retired, so they are rejected rather than silently clamped.
func validateAuction(req *domain.ListingRequest) error {
	if req.Price < minAuctionStartPrice {
		return domain.NewValidationError(
			"price",
			fmt.Sprintf("auction start price must be at least %.2f %s",
				minAuctionStartPrice, req.Currency),
		)
	}
	if req.BuyItNowPrice > 0 && toCents(req.BuyItNowPrice) < toCents(req.Price*minBuyItNowRatio) {
		return domain.NewValidationError(
			"buy_it_now_price",
			fmt.Sprintf("Buy It Now price must be at least %.0f%% of the start price",
				minBuyItNowRatio*100),
		)
	}
	if req.ReservePrice > 0 && req.ReservePrice < req.Price {
		return domain.NewValidationError(
			"reserve_price",
			"reserve price must not be below the start price",
		)
	}
	if !req.ListingDuration.ValidForAuction() {
		return domain.NewValidationError(
			"listing_duration",
			fmt.Sprintf("auction duration must be one of %v days",
				auctionDurationDays()),
		)
	}
	if req.Quantity != 1 {
		return domain.NewValidationError(
			"quantity",
			"auctions must have quantity 1",
		)
	}
	return nil
}

// ValidateSchedule checks a requested listing start time against eBay's
// scheduling window: at least one hour out, at most 21 days out.
func ValidateSchedule(scheduleTime time.Time, now time.Time) error {
	if scheduleTime.Before(now.Add(minScheduleLead)) {
		return domain.NewValidationError(
			"schedule_time",
			"scheduled start must be at least 1 hour in the future",
		)
	}
	if scheduleTime.After(now.Add(maxScheduleHorizon)) {
		return domain.NewValidationError(
			"schedule_time",
			"scheduled start must be within 21 days",
		)
	}
	return nil
}

// toCents rounds a price to whole cents so ratio comparisons are not
// thrown off by binary float representation.
func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func auctionDurationDays() []int {
	days := make([]int, 0, len(domain.AuctionDurations))
	for _, d := range domain.AuctionDurations {
		days = append(days, d.Days())
	}
	return days
}
